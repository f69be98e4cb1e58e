package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ImportReport summarizes one catalog import run. Page-level failures are
// accumulated, not fatal: the run continues with the next page.
type ImportReport struct {
	TotalImported       int      `json:"total_imported"`
	TotalPagesProcessed int      `json:"total_pages_processed"`
	Errors              []string `json:"errors"`
}

// ProductListing is the cached-catalog listing payload.
type ProductListing struct {
	Products []*entity.Product    `json:"products"`
	Stats    *entity.ProductStats `json:"stats"`
}

// CatalogUsecase defines the product-catalog import and listing operations.
type CatalogUsecase interface {
	// Import walks the external store's product pages sequentially, upserting
	// each product into the local cache. Individual product failures are
	// swallowed; page failures are accumulated into the report.
	Import(ctx context.Context) (*ImportReport, error)

	// Products lists the cached catalog with stats.
	Products(ctx context.Context, filter repository.ProductFilter) (*ProductListing, error)
}
