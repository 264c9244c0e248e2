package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type firestoreDiseaseRepository struct {
	client *firestore.Client
}

func NewFirestoreDiseaseRepository(client *firestore.Client) repository.DiseaseRepository {
	return &firestoreDiseaseRepository{
		client: client,
	}
}

func (r *firestoreDiseaseRepository) Create(ctx context.Context, disease *entity.Disease) error {
	if disease.ID == "" {
		doc := r.client.Collection("diseases").NewDoc()
		disease.ID = doc.ID
	}

	now := time.Now()
	if disease.CreatedAt.IsZero() {
		disease.CreatedAt = now
	}
	disease.UpdatedAt = now

	_, err := r.client.Collection("diseases").Doc(disease.ID).Set(ctx, disease)
	if err != nil {
		return errors.Internal("Failed to create disease", err)
	}

	return nil
}

func (r *firestoreDiseaseRepository) GetByID(ctx context.Context, id string) (*entity.Disease, error) {
	doc, err := r.client.Collection("diseases").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Disease", err)
		}
		return nil, errors.Internal("Failed to get disease", err)
	}

	var disease entity.Disease
	if err := doc.DataTo(&disease); err != nil {
		return nil, errors.Internal("Failed to parse disease data", err)
	}

	return &disease, nil
}

func (r *firestoreDiseaseRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Disease, error) {
	query := r.client.Collection("diseases").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.Documents(ctx)
	var diseases []*entity.Disease

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate diseases", err)
		}

		var disease entity.Disease
		if err := doc.DataTo(&disease); err != nil {
			return nil, errors.Internal("Failed to parse disease data", err)
		}
		diseases = append(diseases, &disease)
	}

	return diseases, nil
}

func (r *firestoreDiseaseRepository) Update(ctx context.Context, disease *entity.Disease) error {
	disease.UpdatedAt = time.Now()

	_, err := r.client.Collection("diseases").Doc(disease.ID).Set(ctx, disease)
	if err != nil {
		return errors.Internal("Failed to update disease", err)
	}

	return nil
}

func (r *firestoreDiseaseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("diseases").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete disease", err)
	}

	return nil
}
