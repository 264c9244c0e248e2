package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SetApproval(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}
