package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T, totalPages int) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockSvc.MockCatalogSource) {
	productRepo := mockRepo.NewMockProductRepository(t)
	source := mockSvc.NewMockCatalogSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{TotalPages: totalPages}

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Source:      source,
		Config:      cfg,
		Logger:      logger,
	})

	return svc, productRepo, source
}

func TestCatalogService_Import_WalksAllPages(t *testing.T) {
	svc, productRepo, source := createTestCatalogService(t, 2)
	ctx := context.Background()

	source.EXPECT().FetchPage(ctx, 1).Return([]*entity.Product{
		{RemoteID: 101, Name: "Thermal Paper Roll"},
		{RemoteID: 102, Name: "Card Reader"},
	}, nil)
	source.EXPECT().FetchPage(ctx, 2).Return([]*entity.Product{
		{RemoteID: 103, Name: "Receipt Printer"},
	}, nil)
	productRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Times(3)

	report, err := svc.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalImported)
	assert.Equal(t, 2, report.TotalPagesProcessed)
	assert.Empty(t, report.Errors)
}

func TestCatalogService_Import_EmptyPageEndsEarly(t *testing.T) {
	svc, productRepo, source := createTestCatalogService(t, 5)
	ctx := context.Background()

	source.EXPECT().FetchPage(ctx, 1).Return([]*entity.Product{{RemoteID: 101}}, nil)
	source.EXPECT().FetchPage(ctx, 2).Return([]*entity.Product{}, nil)
	productRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	report, err := svc.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalImported)
	assert.Equal(t, 2, report.TotalPagesProcessed)
}

func TestCatalogService_Import_PageFailureIsRecordedNotFatal(t *testing.T) {
	svc, productRepo, source := createTestCatalogService(t, 2)
	ctx := context.Background()

	source.EXPECT().FetchPage(ctx, 1).Return(nil, errors.New("upstream timeout"))
	source.EXPECT().FetchPage(ctx, 2).Return([]*entity.Product{{RemoteID: 103}}, nil)
	productRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	report, err := svc.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalImported)
	assert.Equal(t, 2, report.TotalPagesProcessed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "page 1")
}

func TestCatalogService_Import_ProductFailureIsSkipped(t *testing.T) {
	svc, productRepo, source := createTestCatalogService(t, 1)
	ctx := context.Background()

	good := &entity.Product{RemoteID: 101}
	bad := &entity.Product{RemoteID: 102}

	source.EXPECT().FetchPage(ctx, 1).Return([]*entity.Product{bad, good}, nil)
	productRepo.EXPECT().Upsert(ctx, bad).Return(errors.New("constraint violated"))
	productRepo.EXPECT().Upsert(ctx, good).Return(nil)

	report, err := svc.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalImported)
	assert.Empty(t, report.Errors)
}

func TestCatalogService_Products(t *testing.T) {
	svc, productRepo, _ := createTestCatalogService(t, 1)
	ctx := context.Background()

	filter := repository.ProductFilter{Search: "paper", Limit: 10}

	productRepo.EXPECT().
		List(ctx, filter).
		Return([]*entity.Product{{RemoteID: 101, Name: "Thermal Paper Roll"}}, nil)
	productRepo.EXPECT().
		Stats(ctx).
		Return(&entity.ProductStats{TotalProducts: 12, InStockProducts: 9, OutOfStockProducts: 3}, nil)

	listing, err := svc.Products(ctx, filter)
	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	assert.Equal(t, int64(12), listing.Stats.TotalProducts)
	assert.Equal(t, int64(3), listing.Stats.OutOfStockProducts)
}
