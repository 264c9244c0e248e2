package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	apperrors "github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type chatRequest struct {
	UserPrompt string `json:"userPrompt"`
	ExpertName string `json:"expertName"`
}

// chatResponse is the one endpoint with its own envelope instead of the
// shared message/error bodies.
type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, chatResponse{
			Success: false,
			Error:   "User prompt is required.",
		})
	}

	answer, err := h.chatUseCase.Ask(c.Request().Context(), req.UserPrompt, req.ExpertName)
	if err != nil {
		message := "Gemini API call failed."
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		return c.JSON(apperrors.StatusOf(err), chatResponse{
			Success: false,
			Error:   message,
		})
	}

	return c.JSON(http.StatusOK, chatResponse{
		Success:  true,
		Response: answer,
	})
}
