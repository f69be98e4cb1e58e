// Package model defines the GORM data models for the persistence layer.
package model

import (
	"strings"
	"time"

	"storefront/internal/domain/entity"

	"gorm.io/gorm"
)

// User is the GORM model for the users table.
type User struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	Family       string         `gorm:"column:family;type:varchar(255);not null"`
	Email        string         `gorm:"column:email;type:varchar(255);not null;index"`
	Phone        string         `gorm:"column:phone;type:varchar(20)"`
	PasswordHash string         `gorm:"column:password_hash;type:varchar(255);not null"`
	Roles        string         `gorm:"column:roles;type:varchar(255);not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// ToEntity converts the data model to a domain entity.
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Family:       m.Family,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(splitRoles(m.Roles)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserEntity converts a domain entity to the data model.
func FromUserEntity(user *entity.User) *User {
	return &User{
		ID:           user.ID,
		Name:         user.Name,
		Family:       user.Family,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Roles:        strings.Join(user.Roles.ToStrings(), ","),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func splitRoles(joined string) []string {
	if joined == "" {
		return nil
	}

	return strings.Split(joined, ",")
}
