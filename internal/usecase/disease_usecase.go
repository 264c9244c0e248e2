package usecase

import (
	"context"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
)

type DiseaseUseCase struct {
	diseaseRepo repository.DiseaseRepository
}

func NewDiseaseUseCase(diseaseRepo repository.DiseaseRepository) *DiseaseUseCase {
	return &DiseaseUseCase{
		diseaseRepo: diseaseRepo,
	}
}

type CreateDiseaseInput struct {
	Name       string
	Crop       string
	Symptoms   []string
	Cause      string
	Treatment  string
	Prevention string
	Severity   string
	ImageURL   string
}

type UpdateDiseaseInput struct {
	Name       *string
	Crop       *string
	Symptoms   *[]string
	Cause      *string
	Treatment  *string
	Prevention *string
	Severity   *string
	ImageURL   *string
}

func (uc *DiseaseUseCase) CreateDisease(ctx context.Context, input CreateDiseaseInput) (*entity.Disease, error) {
	now := time.Now()
	disease := &entity.Disease{
		Name:       input.Name,
		Crop:       input.Crop,
		Symptoms:   input.Symptoms,
		Cause:      input.Cause,
		Treatment:  input.Treatment,
		Prevention: input.Prevention,
		Severity:   input.Severity,
		ImageURL:   input.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.diseaseRepo.Create(ctx, disease); err != nil {
		return nil, err
	}

	return disease, nil
}

func (uc *DiseaseUseCase) GetDiseaseByID(ctx context.Context, id string) (*entity.Disease, error) {
	return uc.diseaseRepo.GetByID(ctx, id)
}

// ListDiseases returns the whole catalog, optionally narrowed to one crop.
// Free-text search over name and crop stays on the client side.
func (uc *DiseaseUseCase) ListDiseases(ctx context.Context, crop string) ([]*entity.Disease, error) {
	filter := make(map[string]interface{})
	if crop != "" {
		filter["crop"] = crop
	}

	return uc.diseaseRepo.List(ctx, filter)
}

// UpdateDisease applies only the supplied fields; absent fields keep their
// stored values.
func (uc *DiseaseUseCase) UpdateDisease(ctx context.Context, id string, input UpdateDiseaseInput) (*entity.Disease, error) {
	disease, err := uc.diseaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		disease.Name = *input.Name
	}
	if input.Crop != nil {
		disease.Crop = *input.Crop
	}
	if input.Symptoms != nil {
		disease.Symptoms = *input.Symptoms
	}
	if input.Cause != nil {
		disease.Cause = *input.Cause
	}
	if input.Treatment != nil {
		disease.Treatment = *input.Treatment
	}
	if input.Prevention != nil {
		disease.Prevention = *input.Prevention
	}
	if input.Severity != nil {
		disease.Severity = *input.Severity
	}
	if input.ImageURL != nil {
		disease.ImageURL = *input.ImageURL
	}

	if err := uc.diseaseRepo.Update(ctx, disease); err != nil {
		return nil, err
	}

	return disease, nil
}

func (uc *DiseaseUseCase) DeleteDisease(ctx context.Context, id string) error {
	if _, err := uc.diseaseRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.diseaseRepo.Delete(ctx, id)
}
