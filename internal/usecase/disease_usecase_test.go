package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type fakeDiseaseRepo struct {
	diseases map[string]*entity.Disease
	listed   map[string]interface{}
}

func newFakeDiseaseRepo() *fakeDiseaseRepo {
	return &fakeDiseaseRepo{diseases: map[string]*entity.Disease{}}
}

func (f *fakeDiseaseRepo) Create(ctx context.Context, disease *entity.Disease) error {
	disease.ID = fmt.Sprintf("d-%d", len(f.diseases)+1)
	f.diseases[disease.ID] = disease
	return nil
}

func (f *fakeDiseaseRepo) GetByID(ctx context.Context, id string) (*entity.Disease, error) {
	disease, ok := f.diseases[id]
	if !ok {
		return nil, errors.NotFound("Disease", nil)
	}
	return disease, nil
}

func (f *fakeDiseaseRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Disease, error) {
	f.listed = filter
	var out []*entity.Disease
	for _, d := range f.diseases {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDiseaseRepo) Update(ctx context.Context, disease *entity.Disease) error {
	f.diseases[disease.ID] = disease
	return nil
}

func (f *fakeDiseaseRepo) Delete(ctx context.Context, id string) error {
	delete(f.diseases, id)
	return nil
}

func TestUpdateDiseaseKeepsAbsentFields(t *testing.T) {
	repo := newFakeDiseaseRepo()
	uc := NewDiseaseUseCase(repo)

	created, err := uc.CreateDisease(context.Background(), CreateDiseaseInput{
		Name:      "Rice Blast",
		Crop:      "Rice",
		Severity:  entity.SeverityHigh,
		Treatment: "Tricyclazole spray",
	})
	require.NoError(t, err)

	treatment := "Rotate fungicides"
	updated, err := uc.UpdateDisease(context.Background(), created.ID, UpdateDiseaseInput{
		Treatment: &treatment,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rotate fungicides", updated.Treatment)
	assert.Equal(t, "Rice Blast", updated.Name)
	assert.Equal(t, entity.SeverityHigh, updated.Severity)
}

func TestListDiseasesByCrop(t *testing.T) {
	repo := newFakeDiseaseRepo()
	uc := NewDiseaseUseCase(repo)

	_, err := uc.ListDiseases(context.Background(), "Rice")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"crop": "Rice"}, repo.listed)
}

func TestDeleteDiseaseChecksExistence(t *testing.T) {
	uc := NewDiseaseUseCase(newFakeDiseaseRepo())

	err := uc.DeleteDisease(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
