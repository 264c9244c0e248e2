package usecase

import (
	"context"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
)

type TipUseCase struct {
	tipRepo repository.TipRepository
}

func NewTipUseCase(tipRepo repository.TipRepository) *TipUseCase {
	return &TipUseCase{
		tipRepo: tipRepo,
	}
}

type CreateTipInput struct {
	Title    string
	Category string
	Season   string
	Icon     string
	Content  []string
	Timing   string
}

type UpdateTipInput struct {
	Title    *string
	Category *string
	Season   *string
	Icon     *string
	Content  *[]string
	Timing   *string
}

func (uc *TipUseCase) CreateTip(ctx context.Context, input CreateTipInput) (*entity.Tip, error) {
	now := time.Now()
	tip := &entity.Tip{
		Title:     input.Title,
		Category:  input.Category,
		Season:    input.Season,
		Icon:      input.Icon,
		Content:   input.Content,
		Timing:    input.Timing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.tipRepo.Create(ctx, tip); err != nil {
		return nil, err
	}

	return tip, nil
}

func (uc *TipUseCase) GetTipByID(ctx context.Context, id string) (*entity.Tip, error) {
	return uc.tipRepo.GetByID(ctx, id)
}

func (uc *TipUseCase) ListTips(ctx context.Context, category, season string) ([]*entity.Tip, error) {
	filter := make(map[string]interface{})
	if category != "" {
		filter["category"] = category
	}
	if season != "" {
		filter["season"] = season
	}

	return uc.tipRepo.List(ctx, filter)
}

func (uc *TipUseCase) UpdateTip(ctx context.Context, id string, input UpdateTipInput) (*entity.Tip, error) {
	tip, err := uc.tipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		tip.Title = *input.Title
	}
	if input.Category != nil {
		tip.Category = *input.Category
	}
	if input.Season != nil {
		tip.Season = *input.Season
	}
	if input.Icon != nil {
		tip.Icon = *input.Icon
	}
	if input.Content != nil {
		tip.Content = *input.Content
	}
	if input.Timing != nil {
		tip.Timing = *input.Timing
	}

	if err := uc.tipRepo.Update(ctx, tip); err != nil {
		return nil, err
	}

	return tip, nil
}

func (uc *TipUseCase) DeleteTip(ctx context.Context, id string) error {
	if _, err := uc.tipRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.tipRepo.Delete(ctx, id)
}
