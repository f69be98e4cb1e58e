package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogSource fetches pages of products from the external e-commerce store.
// Pages are 1-based; a page past the end returns an empty slice.
type CatalogSource interface {
	FetchPage(ctx context.Context, page int) ([]*entity.Product, error)
}
