package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := model.FromOrderEntity(order)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return wrapWriteError(err, "create order")
	}

	order.ID = row.ID
	order.CreatedAt = row.CreatedAt
	order.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var row model.Order
	err := repo.db.WithContext(ctx).
		Preload("Business").
		Preload("ServiceUser").
		Preload("StoreUser").
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return row.ToEntity(), nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	row := model.FromOrderEntity(order)
	// Save writes every column, so cleared string fields and a newly
	// assigned worker survive the round trip.
	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		return wrapWriteError(err, "update order")
	}

	order.UpdatedAt = row.UpdatedAt

	return nil
}

// ListByStoreUser returns the store user's live orders, newest id first. A
// non-empty term is matched case-insensitively as a substring against the
// order's own columns and the joined business and worker columns.
func (repo *orderRepository) ListByStoreUser(ctx context.Context, storeUserID uint, term string) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.Order{}).
		Preload("Business").
		Preload("ServiceUser").
		Preload("StoreUser").
		Joins("LEFT JOIN businesses ON businesses.id = orders.business_id AND businesses.deleted_at IS NULL").
		Joins("LEFT JOIN users AS service_users ON service_users.id = orders.service_user_id AND service_users.deleted_at IS NULL").
		Where("orders.store_user_id = ?", storeUserID)

	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where(repo.db.
			Where("orders.description ILIKE ?", pattern).
			Or("CAST(orders.status AS TEXT) ILIKE ?", pattern).
			Or("orders.full_price ILIKE ?", pattern).
			Or("orders.fee_price ILIKE ?", pattern).
			Or("orders.profit_price ILIKE ?", pattern).
			Or("orders.discount ILIKE ?", pattern).
			Or("service_users.name ILIKE ?", pattern).
			Or("service_users.family ILIKE ?", pattern).
			Or("businesses.name ILIKE ?", pattern).
			Or("businesses.family ILIKE ?", pattern).
			Or("businesses.national_id ILIKE ?", pattern).
			Or("businesses.zipcode ILIKE ?", pattern).
			Or("businesses.mobile ILIKE ?", pattern).
			Or("businesses.address ILIKE ?", pattern).
			Or("businesses.business_name ILIKE ?", pattern).
			Or("businesses.tell ILIKE ?", pattern))
	}

	var rows []*model.Order
	if err := query.Order("orders.id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.ToEntity())
	}

	return orders, nil
}

func (repo *orderRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.Order{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}
