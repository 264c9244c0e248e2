package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Price              float64 `json:"price"`
	Currency           string  `json:"currency"`
	DosageInstructions string  `json:"dosage_instructions"`
	SellerName         string  `json:"seller_name"`
	SellerContact      string  `json:"seller_contact"`
	SellerLocation     string  `json:"seller_location"`
	ImageURL           string  `json:"image_url"`
	StockQuantity      int     `json:"stock_quantity"`
}

type updateProductRequest struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Category           *string  `json:"category"`
	Price              *float64 `json:"price"`
	Currency           *string  `json:"currency"`
	DosageInstructions *string  `json:"dosage_instructions"`
	SellerName         *string  `json:"seller_name"`
	SellerContact      *string  `json:"seller_contact"`
	SellerLocation     *string  `json:"seller_location"`
	ImageURL           *string  `json:"image_url"`
	StockQuantity      *int     `json:"stock_quantity"`
}

type updateApprovalRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	approvedOnly := c.QueryParam("approved") == "true"

	products, err := h.productUseCase.ListProducts(c.Request().Context(), approvedOnly, c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return response.OK(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, product)
}

// CreateProduct leaves required-field checking to the use case so a missing
// seller field comes back as a 400, not a 500.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Required fields are missing", nil))
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Price:              req.Price,
		Currency:           req.Currency,
		DosageInstructions: req.DosageInstructions,
		SellerName:         req.SellerName,
		SellerContact:      req.SellerContact,
		SellerLocation:     req.SellerLocation,
		ImageURL:           req.ImageURL,
		StockQuantity:      req.StockQuantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating product", err))
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Price:              req.Price,
		Currency:           req.Currency,
		DosageInstructions: req.DosageInstructions,
		SellerName:         req.SellerName,
		SellerContact:      req.SellerContact,
		SellerLocation:     req.SellerLocation,
		ImageURL:           req.ImageURL,
		StockQuantity:      req.StockQuantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) UpdateApproval(c echo.Context) error {
	var req updateApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating product approval", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating product approval", err))
	}

	product, err := h.productUseCase.UpdateApproval(c.Request().Context(), c.Param("id"), *req.IsApproved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, 200, "Product deleted successfully")
}
