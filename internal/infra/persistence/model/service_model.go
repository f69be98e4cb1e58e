package model

import (
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/gorm"
)

// Service is the GORM model for the services table.
type Service struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string         `gorm:"column:name;type:varchar(255);not null;index"`
	Price       string         `gorm:"column:price;type:varchar(30)"`
	Description string         `gorm:"column:description;type:text"`
	StoreUserID uint           `gorm:"column:store_user_id;not null;index"`
	StoreUser   *User          `gorm:"foreignKey:StoreUserID"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// ToEntity converts the data model to a domain entity.
func (m *Service) ToEntity() *entity.Service {
	offered := &entity.Service{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		StoreUserID: m.StoreUserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.StoreUser != nil {
		offered.StoreUser = m.StoreUser.ToEntity()
	}

	return offered
}

// FromServiceEntity converts a domain entity to the data model.
func FromServiceEntity(offered *entity.Service) *Service {
	return &Service{
		ID:          offered.ID,
		Name:        offered.Name,
		Price:       offered.Price,
		Description: offered.Description,
		StoreUserID: offered.StoreUserID,
		CreatedAt:   offered.CreatedAt,
		UpdatedAt:   offered.UpdatedAt,
	}
}
