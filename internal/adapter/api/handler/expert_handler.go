package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type ExpertHandler struct {
	expertUseCase *usecase.ExpertUseCase
}

func NewExpertHandler(expertUseCase *usecase.ExpertUseCase) *ExpertHandler {
	return &ExpertHandler{
		expertUseCase: expertUseCase,
	}
}

func (h *ExpertHandler) ListExperts(c echo.Context) error {
	experts, err := h.expertUseCase.ListExperts(c.Request().Context(), c.QueryParam("specialty"))
	if err != nil {
		return response.Error(c, err)
	}

	if experts == nil {
		experts = []*entity.Expert{}
	}

	return response.OK(c, experts)
}

func (h *ExpertHandler) GetExpert(c echo.Context) error {
	expert, err := h.expertUseCase.GetExpertByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, expert)
}
