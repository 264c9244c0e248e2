package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
