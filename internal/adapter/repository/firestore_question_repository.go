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

type firestoreQuestionRepository struct {
	client *firestore.Client
}

func NewFirestoreQuestionRepository(client *firestore.Client) repository.QuestionRepository {
	return &firestoreQuestionRepository{
		client: client,
	}
}

func (r *firestoreQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	if question.ID == "" {
		doc := r.client.Collection("questions").NewDoc()
		question.ID = doc.ID
	}

	now := time.Now()
	if question.CreatedAt.IsZero() {
		question.CreatedAt = now
	}
	question.UpdatedAt = now

	_, err := r.client.Collection("questions").Doc(question.ID).Set(ctx, question)
	if err != nil {
		return errors.Internal("Failed to create question", err)
	}

	return nil
}

func (r *firestoreQuestionRepository) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	doc, err := r.client.Collection("questions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Question", err)
		}
		return nil, errors.Internal("Failed to get question", err)
	}

	var question entity.Question
	if err := doc.DataTo(&question); err != nil {
		return nil, errors.Internal("Failed to parse question data", err)
	}

	return &question, nil
}

func (r *firestoreQuestionRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Question, error) {
	query := r.client.Collection("questions").OrderBy("createdAt", firestore.Desc)

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.Documents(ctx)
	var questions []*entity.Question

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate questions", err)
		}

		var question entity.Question
		if err := doc.DataTo(&question); err != nil {
			return nil, errors.Internal("Failed to parse question data", err)
		}
		questions = append(questions, &question)
	}

	return questions, nil
}

func (r *firestoreQuestionRepository) Update(ctx context.Context, question *entity.Question) error {
	question.UpdatedAt = time.Now()

	_, err := r.client.Collection("questions").Doc(question.ID).Set(ctx, question)
	if err != nil {
		return errors.Internal("Failed to update question", err)
	}

	return nil
}

func (r *firestoreQuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("questions").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete question", err)
	}

	return nil
}
