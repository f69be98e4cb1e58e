package model

import (
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/gorm"
)

// Business is the GORM model for the businesses table.
type Business struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	Family       string         `gorm:"column:family;type:varchar(255);not null"`
	BusinessName string         `gorm:"column:business_name;type:varchar(255);not null"`
	Address      string         `gorm:"column:address;type:text;not null"`
	Mobile       string         `gorm:"column:mobile;type:varchar(20);not null;index"`
	Tell         string         `gorm:"column:tell;type:varchar(20)"`
	Zipcode      string         `gorm:"column:zipcode;type:varchar(20)"`
	NationalID   string         `gorm:"column:national_id;type:varchar(20);index"`
	StoreUserID  uint           `gorm:"column:store_user_id;not null;index"`
	StoreUser    *User          `gorm:"foreignKey:StoreUserID"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the Business model
func (Business) TableName() string {
	return "businesses"
}

// ToEntity converts the data model to a domain entity.
func (m *Business) ToEntity() *entity.Business {
	business := &entity.Business{
		ID:           m.ID,
		Name:         m.Name,
		Family:       m.Family,
		BusinessName: m.BusinessName,
		Address:      m.Address,
		Mobile:       m.Mobile,
		Tell:         m.Tell,
		Zipcode:      m.Zipcode,
		NationalID:   m.NationalID,
		StoreUserID:  m.StoreUserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.StoreUser != nil {
		business.StoreUser = m.StoreUser.ToEntity()
	}

	return business
}

// FromBusinessEntity converts a domain entity to the data model.
func FromBusinessEntity(business *entity.Business) *Business {
	return &Business{
		ID:           business.ID,
		Name:         business.Name,
		Family:       business.Family,
		BusinessName: business.BusinessName,
		Address:      business.Address,
		Mobile:       business.Mobile,
		Tell:         business.Tell,
		Zipcode:      business.Zipcode,
		NationalID:   business.NationalID,
		StoreUserID:  business.StoreUserID,
		CreatedAt:    business.CreatedAt,
		UpdatedAt:    business.UpdatedAt,
	}
}
