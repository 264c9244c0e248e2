package repository

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id string) (*entity.Question, error)
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Question, error)
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id string) error
}
