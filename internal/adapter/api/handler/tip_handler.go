package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type TipHandler struct {
	tipUseCase *usecase.TipUseCase
}

func NewTipHandler(tipUseCase *usecase.TipUseCase) *TipHandler {
	return &TipHandler{
		tipUseCase: tipUseCase,
	}
}

type createTipRequest struct {
	Title    string   `json:"title" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Season   string   `json:"season" validate:"required"`
	Icon     string   `json:"icon" validate:"required"`
	Content  []string `json:"content"`
	Timing   string   `json:"timing"`
}

type updateTipRequest struct {
	Title    *string   `json:"title"`
	Category *string   `json:"category"`
	Season   *string   `json:"season"`
	Icon     *string   `json:"icon"`
	Content  *[]string `json:"content"`
	Timing   *string   `json:"timing"`
}

func (h *TipHandler) ListTips(c echo.Context) error {
	tips, err := h.tipUseCase.ListTips(c.Request().Context(), c.QueryParam("category"), c.QueryParam("season"))
	if err != nil {
		return response.Error(c, err)
	}

	if tips == nil {
		tips = []*entity.Tip{}
	}

	return response.OK(c, tips)
}

func (h *TipHandler) GetTip(c echo.Context) error {
	tip, err := h.tipUseCase.GetTipByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, tip)
}

func (h *TipHandler) CreateTip(c echo.Context) error {
	var req createTipRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating tip", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating tip", err))
	}

	tip, err := h.tipUseCase.CreateTip(c.Request().Context(), usecase.CreateTipInput{
		Title:    req.Title,
		Category: req.Category,
		Season:   req.Season,
		Icon:     req.Icon,
		Content:  req.Content,
		Timing:   req.Timing,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, tip)
}

func (h *TipHandler) UpdateTip(c echo.Context) error {
	var req updateTipRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating tip", err))
	}

	tip, err := h.tipUseCase.UpdateTip(c.Request().Context(), c.Param("id"), usecase.UpdateTipInput{
		Title:    req.Title,
		Category: req.Category,
		Season:   req.Season,
		Icon:     req.Icon,
		Content:  req.Content,
		Timing:   req.Timing,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, tip)
}

func (h *TipHandler) DeleteTip(c echo.Context) error {
	if err := h.tipUseCase.DeleteTip(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, 200, "Tip deleted successfully")
}
