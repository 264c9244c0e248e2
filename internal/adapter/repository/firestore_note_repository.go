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

type firestoreNoteRepository struct {
	client *firestore.Client
}

func NewFirestoreNoteRepository(client *firestore.Client) repository.NoteRepository {
	return &firestoreNoteRepository{
		client: client,
	}
}

func (r *firestoreNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.ID == "" {
		doc := r.client.Collection("notes").NewDoc()
		note.ID = doc.ID
	}

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("notes").Doc(note.ID).Set(ctx, note)
	if err != nil {
		return errors.Internal("Failed to create note", err)
	}

	return nil
}

func (r *firestoreNoteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	doc, err := r.client.Collection("notes").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Note", err)
		}
		return nil, errors.Internal("Failed to get note", err)
	}

	var note entity.Note
	if err := doc.DataTo(&note); err != nil {
		return nil, errors.Internal("Failed to parse note data", err)
	}

	return &note, nil
}

func (r *firestoreNoteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	query := r.client.Collection("notes").Where("userId", "==", userID).OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var notes []*entity.Note

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notes", err)
		}

		var note entity.Note
		if err := doc.DataTo(&note); err != nil {
			return nil, errors.Internal("Failed to parse note data", err)
		}
		notes = append(notes, &note)
	}

	return notes, nil
}

func (r *firestoreNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notes").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete note", err)
	}

	return nil
}
