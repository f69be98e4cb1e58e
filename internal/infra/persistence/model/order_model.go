package model

import (
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/gorm"
)

// Order is the GORM model for the orders table.
type Order struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement"`
	BusinessID    uint           `gorm:"column:business_id;not null;index"`
	Business      *Business      `gorm:"foreignKey:BusinessID"`
	Services      string         `gorm:"column:services;type:varchar(255);not null"`
	Description   string         `gorm:"column:description;type:text"`
	Status        int            `gorm:"column:status;not null;default:0"`
	FullPrice     string         `gorm:"column:full_price;type:varchar(30);not null"`
	FeePrice      string         `gorm:"column:fee_price;type:varchar(30)"`
	ProfitPrice   string         `gorm:"column:profit_price;type:varchar(30)"`
	Discount      string         `gorm:"column:discount;type:varchar(30)"`
	ServiceUserID *uint          `gorm:"column:service_user_id;index"`
	ServiceUser   *User          `gorm:"foreignKey:ServiceUserID"`
	StoreUserID   uint           `gorm:"column:store_user_id;not null;index"`
	StoreUser     *User          `gorm:"foreignKey:StoreUserID"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ToEntity converts the data model to a domain entity.
func (m *Order) ToEntity() *entity.Order {
	order := &entity.Order{
		ID:            m.ID,
		BusinessID:    m.BusinessID,
		Services:      m.Services,
		Description:   m.Description,
		Status:        m.Status,
		FullPrice:     m.FullPrice,
		FeePrice:      m.FeePrice,
		ProfitPrice:   m.ProfitPrice,
		Discount:      m.Discount,
		ServiceUserID: m.ServiceUserID,
		StoreUserID:   m.StoreUserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Business != nil {
		order.Business = m.Business.ToEntity()
	}
	if m.ServiceUser != nil {
		order.ServiceUser = m.ServiceUser.ToEntity()
	}
	if m.StoreUser != nil {
		order.StoreUser = m.StoreUser.ToEntity()
	}

	return order
}

// FromOrderEntity converts a domain entity to the data model.
func FromOrderEntity(order *entity.Order) *Order {
	return &Order{
		ID:            order.ID,
		BusinessID:    order.BusinessID,
		Services:      order.Services,
		Description:   order.Description,
		Status:        order.Status,
		FullPrice:     order.FullPrice,
		FeePrice:      order.FeePrice,
		ProfitPrice:   order.ProfitPrice,
		Discount:      order.Discount,
		ServiceUserID: order.ServiceUserID,
		StoreUserID:   order.StoreUserID,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
