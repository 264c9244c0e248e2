package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:           "Neem oil concentrate",
		Category:       "Organic pesticide",
		Price:          1250,
		SellerName:     "Green Agro Stores",
		SellerContact:  "+94 77 123 4567",
		SellerLocation: "Kandy",
	}
}

func TestCreateProductRejectsMissingRequiredFields(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	cases := map[string]func(*CreateProductInput){
		"name":            func(in *CreateProductInput) { in.Name = "" },
		"category":        func(in *CreateProductInput) { in.Category = "" },
		"price":           func(in *CreateProductInput) { in.Price = 0 },
		"seller name":     func(in *CreateProductInput) { in.SellerName = "" },
		"seller contact":  func(in *CreateProductInput) { in.SellerContact = "" },
		"seller location": func(in *CreateProductInput) { in.SellerLocation = "" },
	}

	for name, clear := range cases {
		t.Run(name, func(t *testing.T) {
			input := validProductInput()
			clear(&input)

			_, err := uc.CreateProduct(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
			assert.Equal(t, 400, errors.StatusOf(err))
		})
	}
}

func TestCreateProductDefaults(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	product, err := uc.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultCurrency, product.Currency)
	assert.Equal(t, 0, product.StockQuantity)
	assert.False(t, product.IsApproved)
	assert.NotEmpty(t, product.ID)
}

func TestCreateProductKeepsExplicitCurrency(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	input := validProductInput()
	input.Currency = "USD"

	product, err := uc.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "USD", product.Currency)
}

func TestListProductsBuildsApprovalFilter(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	_, err := uc.ListProducts(context.Background(), true, "Fungicide")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"isApproved": true, "category": "Fungicide"}, repo.listed)

	_, err = uc.ListProducts(context.Background(), false, "")
	require.NoError(t, err)
	assert.Empty(t, repo.listed)
}

func TestUpdateApproval(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	approved, err := uc.UpdateApproval(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	_, err = uc.UpdateApproval(context.Background(), "missing", true)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateProductAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)

	price := 999.0
	updated, err := uc.UpdateProduct(context.Background(), created.ID, UpdateProductInput{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 999.0, updated.Price)
	assert.Equal(t, "Neem oil concentrate", updated.Name)
	assert.Equal(t, "Kandy", updated.SellerLocation)
}
