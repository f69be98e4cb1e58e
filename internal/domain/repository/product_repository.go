package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductFilter narrows the cached-catalog listing.
type ProductFilter struct {
	Search string // OR-substring match across name, description, sku and raw payload.
	Name   string
	Slug   string
	SKU    string // Exact match.
	Limit  int
	Offset int
}

// ProductRepository defines the operations for the cached external catalog.
type ProductRepository interface {
	// Upsert inserts the product or, when a row with the same remote id
	// already exists, updates it in place.
	Upsert(ctx context.Context, product *entity.Product) error

	// List returns cached products, newest first, after applying the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Stats summarizes the cached catalog.
	Stats(ctx context.Context) (*entity.ProductStats, error)
}
