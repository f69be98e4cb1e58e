package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) Create(ctx context.Context, offered *entity.Service) error {
	row := model.FromServiceEntity(offered)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return wrapWriteError(err, "create service")
	}

	offered.ID = row.ID
	offered.CreatedAt = row.CreatedAt
	offered.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindByID(ctx context.Context, id uint) (*entity.Service, error) {
	var row model.Service
	err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return row.ToEntity(), nil
}

func (repo *serviceRepository) Update(ctx context.Context, offered *entity.Service) error {
	row := model.FromServiceEntity(offered)
	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		return wrapWriteError(err, "update service")
	}

	offered.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *serviceRepository) List(ctx context.Context, term string) ([]*entity.Service, error) {
	query := repo.db.WithContext(ctx).Model(&model.Service{})

	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where(repo.db.
			Where("name ILIKE ?", pattern).
			Or("description ILIKE ?", pattern).
			Or("price ILIKE ?", pattern))
	}

	var rows []*model.Service
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, row.ToEntity())
	}

	return services, nil
}

// NameExists reports whether a live service other than excludeID already
// holds the name. Soft-deleted rows never count.
func (repo *serviceRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check name uniqueness")
	}

	return count > 0, nil
}

func (repo *serviceRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.Service{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}
