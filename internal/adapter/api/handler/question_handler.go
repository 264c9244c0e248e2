package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type QuestionHandler struct {
	questionUseCase *usecase.QuestionUseCase
}

func NewQuestionHandler(questionUseCase *usecase.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{
		questionUseCase: questionUseCase,
	}
}

// createQuestionRequest deliberately has no status or date field: the server
// stamps both.
type createQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	Expert   string `json:"expert" validate:"required"`
}

func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	questions, err := h.questionUseCase.ListQuestions(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	if questions == nil {
		questions = []*entity.Question{}
	}

	return response.OK(c, questions)
}

func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error submitting question", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error submitting question", err))
	}

	question, err := h.questionUseCase.CreateQuestion(c.Request().Context(), usecase.CreateQuestionInput{
		Question: req.Question,
		Expert:   req.Expert,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, question)
}
