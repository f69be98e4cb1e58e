package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	row := model.FromBusinessEntity(business)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return wrapWriteError(err, "create business")
	}

	business.ID = row.ID
	business.CreatedAt = row.CreatedAt
	business.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *businessRepository) FindByID(ctx context.Context, id uint) (*entity.Business, error) {
	var row model.Business
	err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return row.ToEntity(), nil
}

func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	row := model.FromBusinessEntity(business)
	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		return wrapWriteError(err, "update business")
	}

	business.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *businessRepository) List(ctx context.Context, term string) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Model(&model.Business{})

	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where(repo.db.
			Where("name ILIKE ?", pattern).
			Or("family ILIKE ?", pattern).
			Or("business_name ILIKE ?", pattern).
			Or("mobile ILIKE ?", pattern).
			Or("national_id ILIKE ?", pattern))
	}

	var rows []*model.Business
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, row.ToEntity())
	}

	return businesses, nil
}

// MobileExists reports whether a live business other than excludeID already
// holds the mobile. Soft-deleted rows never count.
func (repo *businessRepository) MobileExists(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return repo.fieldExists(ctx, "mobile", mobile, excludeID)
}

// NationalIDExists reports whether a live business other than excludeID
// already holds the national id.
func (repo *businessRepository) NationalIDExists(ctx context.Context, nationalID string, excludeID uint) (bool, error) {
	return repo.fieldExists(ctx, "national_id", nationalID, excludeID)
}

func (repo *businessRepository) fieldExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.Business{}).
		Where(column+" = ?", value)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s uniqueness", column)
	}

	return count > 0, nil
}

func (repo *businessRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.Business{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}
