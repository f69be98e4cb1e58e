package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTotalPages = 10

// catalogService implements the CatalogUsecase interface: the external store
// import loop and the cached-catalog listing.
type catalogService struct {
	productRepo repository.ProductRepository
	source      service.CatalogSource
	cfg         *config.CatalogConfig
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Source      service.CatalogSource
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	cfg := params.Config.Catalog
	if cfg == nil {
		cfg = &config.CatalogConfig{}
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		source:      params.Source,
		cfg:         cfg,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Import walks the external store's product pages sequentially. A failed
// page is recorded in the report and the loop moves on; a failed product
// upsert is logged and skipped. An empty page ends the walk early.
func (srv *catalogService) Import(ctx context.Context) (*usecase.ImportReport, error) {
	report := &usecase.ImportReport{Errors: []string{}}

	totalPages := srv.cfg.TotalPages
	if totalPages <= 0 {
		totalPages = defaultTotalPages
	}

	for page := 1; page <= totalPages; page++ {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "import interrupted")
		}

		report.TotalPagesProcessed++

		products, err := srv.source.FetchPage(ctx, page)
		if err != nil {
			srv.log(ctx).Warn("Catalog page fetch failed",
				slog.Int("page", page),
				slog.Any("error", err),
			)
			report.Errors = append(report.Errors, fmt.Sprintf("page %d: %v", page, err))

			continue
		}

		if len(products) == 0 {
			break
		}

		for _, product := range products {
			if err := srv.productRepo.Upsert(ctx, product); err != nil {
				srv.log(ctx).Warn("Product upsert failed",
					slog.Int("remoteID", product.RemoteID),
					slog.Any("error", err),
				)

				continue
			}

			report.TotalImported++
		}

		if srv.cfg.PageDelay > 0 && page < totalPages {
			select {
			case <-ctx.Done():
				return report, errors.Wrap(ctx.Err(), "import interrupted")
			case <-time.After(srv.cfg.PageDelay):
			}
		}
	}

	srv.log(ctx).Info("Catalog import finished",
		slog.Int("imported", report.TotalImported),
		slog.Int("pages", report.TotalPagesProcessed),
		slog.Int("pageErrors", len(report.Errors)),
	)

	return report, nil
}

// Products lists the cached catalog with aggregate stats.
func (srv *catalogService) Products(ctx context.Context, filter repository.ProductFilter) (*usecase.ProductListing, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	stats, err := srv.productRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute product stats")
	}

	return &usecase.ProductListing{
		Products: products,
		Stats:    stats,
	}, nil
}
