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

type firestoreExpertRepository struct {
	client *firestore.Client
}

func NewFirestoreExpertRepository(client *firestore.Client) repository.ExpertRepository {
	return &firestoreExpertRepository{
		client: client,
	}
}

func (r *firestoreExpertRepository) Create(ctx context.Context, expert *entity.Expert) error {
	if expert.ID == "" {
		doc := r.client.Collection("experts").NewDoc()
		expert.ID = doc.ID
	}

	now := time.Now()
	if expert.CreatedAt.IsZero() {
		expert.CreatedAt = now
	}
	expert.UpdatedAt = now

	_, err := r.client.Collection("experts").Doc(expert.ID).Set(ctx, expert)
	if err != nil {
		return errors.Internal("Failed to create expert", err)
	}

	return nil
}

func (r *firestoreExpertRepository) GetByID(ctx context.Context, id string) (*entity.Expert, error) {
	doc, err := r.client.Collection("experts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Expert", err)
		}
		return nil, errors.Internal("Failed to get expert", err)
	}

	var expert entity.Expert
	if err := doc.DataTo(&expert); err != nil {
		return nil, errors.Internal("Failed to parse expert data", err)
	}

	return &expert, nil
}

func (r *firestoreExpertRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Expert, error) {
	// Experts are a small, read-mostly catalog; ordering by rating keeps the
	// most experienced advisors at the top of the directory.
	query := r.client.Collection("experts").OrderBy("rating", firestore.Desc)

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.Documents(ctx)
	var experts []*entity.Expert

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate experts", err)
		}

		var expert entity.Expert
		if err := doc.DataTo(&expert); err != nil {
			return nil, errors.Internal("Failed to parse expert data", err)
		}
		experts = append(experts, &expert)
	}

	return experts, nil
}

func (r *firestoreExpertRepository) Update(ctx context.Context, expert *entity.Expert) error {
	expert.UpdatedAt = time.Now()

	_, err := r.client.Collection("experts").Doc(expert.ID).Set(ctx, expert)
	if err != nil {
		return errors.Internal("Failed to update expert", err)
	}

	return nil
}

func (r *firestoreExpertRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("experts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete expert", err)
	}

	return nil
}
