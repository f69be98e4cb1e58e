// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// All reads exclude soft-deleted rows.
type OrderRepository interface {
	// Create persists a new order and fills in its generated id and timestamps.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its Business, StoreUser and
	// ServiceUser relations attached.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// Update persists the full current state of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// ListByStoreUser returns the caller's orders, id descending, relations
	// attached. A non-empty term applies the case-insensitive substring
	// OR-match across order fields and the joined worker/business columns.
	ListByStoreUser(ctx context.Context, storeUserID uint, term string) ([]*entity.Order, error)

	// Delete soft-deletes an order by id.
	Delete(ctx context.Context, id uint) error
}
