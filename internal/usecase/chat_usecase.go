package usecase

import (
	"context"
	"strings"

	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

// ChatUseCase relays farmer prompts to the generative advisor. A nil advisor
// means the server was started without an API key; the request fails before
// anything goes upstream.
type ChatUseCase struct {
	advisor ChatAdvisor
}

func NewChatUseCase(advisor ChatAdvisor) *ChatUseCase {
	return &ChatUseCase{
		advisor: advisor,
	}
}

func (uc *ChatUseCase) Ask(ctx context.Context, prompt, expertName string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.BadRequest("User prompt is required.", nil)
	}

	if uc.advisor == nil {
		return "", errors.Internal("API key is not configured on the server.", nil)
	}

	return uc.advisor.Advise(ctx, prompt, expertName)
}
