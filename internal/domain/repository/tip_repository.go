package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type TipRepository interface {
	Create(ctx context.Context, tip *entity.Tip) error
	GetByID(ctx context.Context, id string) (*entity.Tip, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Tip, error)
	Update(ctx context.Context, tip *entity.Tip) error
	Delete(ctx context.Context, id string) error
}
