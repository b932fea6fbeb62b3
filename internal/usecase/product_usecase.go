package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name    string
	Price   float64
	Content *string
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// Create persists a new product owned by the given user.
	Create(ctx context.Context, input *CreateProductInput, ownerID uint) (*entity.Product, error)

	// List returns every product in the catalog.
	List(ctx context.Context) ([]*entity.Product, error)
}
