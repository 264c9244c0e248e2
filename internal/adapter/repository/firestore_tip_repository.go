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

type firestoreTipRepository struct {
	client *firestore.Client
}

func NewFirestoreTipRepository(client *firestore.Client) repository.TipRepository {
	return &firestoreTipRepository{
		client: client,
	}
}

func (r *firestoreTipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	if tip.ID == "" {
		doc := r.client.Collection("tips").NewDoc()
		tip.ID = doc.ID
	}

	now := time.Now()
	if tip.CreatedAt.IsZero() {
		tip.CreatedAt = now
	}
	tip.UpdatedAt = now

	_, err := r.client.Collection("tips").Doc(tip.ID).Set(ctx, tip)
	if err != nil {
		return errors.Internal("Failed to create tip", err)
	}

	return nil
}

func (r *firestoreTipRepository) GetByID(ctx context.Context, id string) (*entity.Tip, error) {
	doc, err := r.client.Collection("tips").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tip", err)
		}
		return nil, errors.Internal("Failed to get tip", err)
	}

	var tip entity.Tip
	if err := doc.DataTo(&tip); err != nil {
		return nil, errors.Internal("Failed to parse tip data", err)
	}

	return &tip, nil
}

func (r *firestoreTipRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Tip, error) {
	query := r.client.Collection("tips").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.Documents(ctx)
	var tips []*entity.Tip

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tips", err)
		}

		var tip entity.Tip
		if err := doc.DataTo(&tip); err != nil {
			return nil, errors.Internal("Failed to parse tip data", err)
		}
		tips = append(tips, &tip)
	}

	return tips, nil
}

func (r *firestoreTipRepository) Update(ctx context.Context, tip *entity.Tip) error {
	tip.UpdatedAt = time.Now()

	_, err := r.client.Collection("tips").Doc(tip.ID).Set(ctx, tip)
	if err != nil {
		return errors.Internal("Failed to update tip", err)
	}

	return nil
}

func (r *firestoreTipRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("tips").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete tip", err)
	}

	return nil
}
