package model

import (
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/gorm"
)

// Product is the GORM model for the cached external catalog.
type Product struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement"`
	RemoteID     int            `gorm:"column:remote_id;not null;uniqueIndex"`
	Name         string         `gorm:"column:name;type:varchar(255);not null;index"`
	Slug         string         `gorm:"column:slug;type:varchar(255);index"`
	Permalink    string         `gorm:"column:permalink;type:text"`
	SKU          string         `gorm:"column:sku;type:varchar(100);index"`
	Description  string         `gorm:"column:description;type:text"`
	Price        string         `gorm:"column:price;type:varchar(30)"`
	RegularPrice string         `gorm:"column:regular_price;type:varchar(30)"`
	Images       string         `gorm:"column:images;type:text"`
	IsInStock    bool           `gorm:"column:is_in_stock;not null;default:false"`
	Maximum      string         `gorm:"column:maximum;type:varchar(30)"`
	Raw          string         `gorm:"column:raw;type:jsonb"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ToEntity converts the data model to a domain entity.
func (m *Product) ToEntity() *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		RemoteID:     m.RemoteID,
		Name:         m.Name,
		Slug:         m.Slug,
		Permalink:    m.Permalink,
		SKU:          m.SKU,
		Description:  m.Description,
		Price:        m.Price,
		RegularPrice: m.RegularPrice,
		Images:       m.Images,
		IsInStock:    m.IsInStock,
		Maximum:      m.Maximum,
		Raw:          m.Raw,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromProductEntity converts a domain entity to the data model.
func FromProductEntity(product *entity.Product) *Product {
	return &Product{
		ID:           product.ID,
		RemoteID:     product.RemoteID,
		Name:         product.Name,
		Slug:         product.Slug,
		Permalink:    product.Permalink,
		SKU:          product.SKU,
		Description:  product.Description,
		Price:        product.Price,
		RegularPrice: product.RegularPrice,
		Images:       product.Images,
		IsInStock:    product.IsInStock,
		Maximum:      product.Maximum,
		Raw:          product.Raw,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
