package usecase

import (
	"context"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
)

// ExpertUseCase serves the read-mostly advisor directory; experts enter the
// system through seeding, not the public API.
type ExpertUseCase struct {
	expertRepo repository.ExpertRepository
}

func NewExpertUseCase(expertRepo repository.ExpertRepository) *ExpertUseCase {
	return &ExpertUseCase{
		expertRepo: expertRepo,
	}
}

func (uc *ExpertUseCase) GetExpertByID(ctx context.Context, id string) (*entity.Expert, error) {
	return uc.expertRepo.GetByID(ctx, id)
}

func (uc *ExpertUseCase) ListExperts(ctx context.Context, specialty string) ([]*entity.Expert, error) {
	filter := make(map[string]interface{})
	if specialty != "" {
		filter["specialty"] = specialty
	}

	return uc.expertRepo.List(ctx, filter)
}
