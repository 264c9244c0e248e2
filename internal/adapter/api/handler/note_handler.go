package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type NoteHandler struct {
	noteUseCase *usecase.NoteUseCase
}

func NewNoteHandler(noteUseCase *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
	}
}

type createNoteRequest struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *NoteHandler) ListNotes(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	notes, err := h.noteUseCase.ListNotesByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	if notes == nil {
		notes = []*entity.Note{}
	}

	return response.OK(c, notes)
}

func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating note", err))
	}

	// The authenticated uid wins over whatever user_id the body carries.
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		req.UserID = uid
	}

	note, err := h.noteUseCase.CreateNote(c.Request().Context(), usecase.CreateNoteInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, note)
}

func (h *NoteHandler) DeleteNote(c echo.Context) error {
	if err := h.noteUseCase.DeleteNote(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, 200, "Note deleted successfully")
}
