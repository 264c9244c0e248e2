package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type DiseaseHandler struct {
	diseaseUseCase *usecase.DiseaseUseCase
}

func NewDiseaseHandler(diseaseUseCase *usecase.DiseaseUseCase) *DiseaseHandler {
	return &DiseaseHandler{
		diseaseUseCase: diseaseUseCase,
	}
}

type createDiseaseRequest struct {
	Name       string   `json:"name" validate:"required"`
	Crop       string   `json:"crop" validate:"required"`
	Symptoms   []string `json:"symptoms"`
	Cause      string   `json:"cause" validate:"required"`
	Treatment  string   `json:"treatment" validate:"required"`
	Prevention string   `json:"prevention" validate:"required"`
	Severity   string   `json:"severity" validate:"required,oneof=High Medium Low"`
	ImageURL   string   `json:"image_url" validate:"omitempty,url"`
}

type updateDiseaseRequest struct {
	Name       *string   `json:"name"`
	Crop       *string   `json:"crop"`
	Symptoms   *[]string `json:"symptoms"`
	Cause      *string   `json:"cause"`
	Treatment  *string   `json:"treatment"`
	Prevention *string   `json:"prevention"`
	Severity   *string   `json:"severity" validate:"omitempty,oneof=High Medium Low"`
	ImageURL   *string   `json:"image_url"`
}

func (h *DiseaseHandler) ListDiseases(c echo.Context) error {
	diseases, err := h.diseaseUseCase.ListDiseases(c.Request().Context(), c.QueryParam("crop"))
	if err != nil {
		return response.Error(c, err)
	}

	if diseases == nil {
		diseases = []*entity.Disease{}
	}

	return response.OK(c, diseases)
}

func (h *DiseaseHandler) GetDisease(c echo.Context) error {
	disease, err := h.diseaseUseCase.GetDiseaseByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, disease)
}

func (h *DiseaseHandler) CreateDisease(c echo.Context) error {
	var req createDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating disease", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating disease", err))
	}

	disease, err := h.diseaseUseCase.CreateDisease(c.Request().Context(), usecase.CreateDiseaseInput{
		Name:       req.Name,
		Crop:       req.Crop,
		Symptoms:   req.Symptoms,
		Cause:      req.Cause,
		Treatment:  req.Treatment,
		Prevention: req.Prevention,
		Severity:   req.Severity,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, disease)
}

func (h *DiseaseHandler) UpdateDisease(c echo.Context) error {
	var req updateDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating disease", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating disease", err))
	}

	disease, err := h.diseaseUseCase.UpdateDisease(c.Request().Context(), c.Param("id"), usecase.UpdateDiseaseInput{
		Name:       req.Name,
		Crop:       req.Crop,
		Symptoms:   req.Symptoms,
		Cause:      req.Cause,
		Treatment:  req.Treatment,
		Prevention: req.Prevention,
		Severity:   req.Severity,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, disease)
}

func (h *DiseaseHandler) DeleteDisease(c echo.Context) error {
	if err := h.diseaseUseCase.DeleteDisease(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, 200, "Disease deleted successfully")
}
