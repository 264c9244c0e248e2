package usecase

import (
	"context"
	"io"
)

// ChatAdvisor generates an advisory answer for a farmer's prompt, optionally
// speaking as a named expert.
type ChatAdvisor interface {
	Advise(ctx context.Context, prompt, expertName string) (string, error)
}

// FileUploader stores an image and returns its public URL.
type FileUploader interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}
