package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository is the persistence contract for catalog products.
type ProductRepository interface {
	// Create persists a new product and fills in the generated id and
	// timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// List returns all products ordered by id.
	List(ctx context.Context) ([]*entity.Product, error)
}
