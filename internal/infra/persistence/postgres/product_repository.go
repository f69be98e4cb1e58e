package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Upsert inserts the product or, when the remote id is already cached,
// refreshes the cached columns in place.
func (repo *productRepository) Upsert(ctx context.Context, product *entity.Product) error {
	row := model.FromProductEntity(product)
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "remote_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "permalink", "sku", "description",
			"price", "regular_price", "images", "is_in_stock",
			"maximum", "raw", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return wrapWriteError(err, "upsert product")
	}

	product.ID = row.ID

	return nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(repo.db.
			Where("name ILIKE ?", pattern).
			Or("slug ILIKE ?", pattern).
			Or("sku ILIKE ?", pattern).
			Or("description ILIKE ?", pattern))
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Slug != "" {
		query = query.Where("slug = ?", filter.Slug)
	}
	if filter.SKU != "" {
		query = query.Where("sku = ?", filter.SKU)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []*model.Product
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToEntity())
	}

	return products, nil
}

func (repo *productRepository) Stats(ctx context.Context) (*entity.ProductStats, error) {
	stats := &entity.ProductStats{}

	base := repo.db.WithContext(ctx).Model(&model.Product{})
	if err := base.Count(&stats.TotalProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	inStock := repo.db.WithContext(ctx).Model(&model.Product{}).Where("is_in_stock = ?", true)
	if err := inStock.Count(&stats.InStockProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count in-stock products")
	}

	stats.OutOfStockProducts = stats.TotalProducts - stats.InStockProducts

	return stats, nil
}
