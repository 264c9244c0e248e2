package usecase

import (
	"context"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	Name               string
	Description        string
	Category           string
	Price              float64
	Currency           string
	DosageInstructions string
	SellerName         string
	SellerContact      string
	SellerLocation     string
	ImageURL           string
	StockQuantity      int
}

type UpdateProductInput struct {
	Name               *string
	Description        *string
	Category           *string
	Price              *float64
	Currency           *string
	DosageInstructions *string
	SellerName         *string
	SellerContact      *string
	SellerLocation     *string
	ImageURL           *string
	StockQuantity      *int
}

// CreateProduct is the one write path that rejects bad input with a 400
// instead of letting the store turn it into a 500. New listings always start
// unapproved.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Category == "" || input.Price == 0 ||
		input.SellerName == "" || input.SellerContact == "" || input.SellerLocation == "" {
		return nil, errors.BadRequest("Required fields are missing", nil)
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	now := time.Now()
	product := &entity.Product{
		Name:               input.Name,
		Description:        input.Description,
		Category:           input.Category,
		Price:              input.Price,
		Currency:           currency,
		DosageInstructions: input.DosageInstructions,
		SellerName:         input.SellerName,
		SellerContact:      input.SellerContact,
		SellerLocation:     input.SellerLocation,
		ImageURL:           input.ImageURL,
		StockQuantity:      input.StockQuantity,
		IsApproved:         false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, approvedOnly bool, category string) ([]*entity.Product, error) {
	filter := make(map[string]interface{})
	if approvedOnly {
		filter["isApproved"] = true
	}
	if category != "" {
		filter["category"] = category
	}

	return uc.productRepo.List(ctx, filter)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Currency != nil {
		product.Currency = *input.Currency
	}
	if input.DosageInstructions != nil {
		product.DosageInstructions = *input.DosageInstructions
	}
	if input.SellerName != nil {
		product.SellerName = *input.SellerName
	}
	if input.SellerContact != nil {
		product.SellerContact = *input.SellerContact
	}
	if input.SellerLocation != nil {
		product.SellerLocation = *input.SellerLocation
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateApproval(ctx context.Context, id string, approved bool) (*entity.Product, error) {
	if err := uc.productRepo.SetApproval(ctx, id, approved); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}
