package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/logger"
)

type NoteUseCase struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

func NewNoteUseCase(noteRepo repository.NoteRepository, userRepo repository.UserRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

type CreateNoteInput struct {
	UserID  string
	Title   string
	Content string
}

// CreateNote persists the note, then appends its id to the owner's savedNotes
// array. The two writes are independent: if the array update fails the note
// stays persisted and the failure is only logged. A crash between the writes
// leaves an orphaned note.
func (uc *NoteUseCase) CreateNote(ctx context.Context, input CreateNoteInput) (*entity.Note, error) {
	if input.UserID == "" || input.Title == "" || input.Content == "" {
		// Field validation shares the 500 path with store failures here;
		// only the product listing endpoint reports a 400.
		return nil, errors.Internal("Failed to create note", fmt.Errorf("user_id, title and content are required"))
	}

	note := &entity.Note{
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	if err := uc.userRepo.AppendSavedNote(ctx, input.UserID, note.ID); err != nil {
		logger.Warn("note %s created but savedNotes update failed for user %s: %v", note.ID, input.UserID, err)
	}

	return note, nil
}

func (uc *NoteUseCase) ListNotesByUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	return uc.noteRepo.ListByUser(ctx, userID)
}

// DeleteNote removes the note and then, best-effort, pulls its id out of the
// owner's savedNotes array.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id string) error {
	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.userRepo.RemoveSavedNote(ctx, note.UserID, note.ID); err != nil {
		logger.Warn("note %s deleted but savedNotes cleanup failed for user %s: %v", note.ID, note.UserID, err)
	}

	return nil
}
