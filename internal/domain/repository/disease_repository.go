package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type DiseaseRepository interface {
	Create(ctx context.Context, disease *entity.Disease) error
	GetByID(ctx context.Context, id string) (*entity.Disease, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Disease, error)
	Update(ctx context.Context, disease *entity.Disease) error
	Delete(ctx context.Context, id string) error
}
