package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type ExpertRepository interface {
	Create(ctx context.Context, expert *entity.Expert) error
	GetByID(ctx context.Context, id string) (*entity.Expert, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Expert, error)
	Update(ctx context.Context, expert *entity.Expert) error
	Delete(ctx context.Context, id string) error
}
