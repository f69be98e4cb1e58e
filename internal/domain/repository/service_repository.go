package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrServiceNotFound is a domain-specific error returned when a service is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the standard operations for service-catalog persistence.
type ServiceRepository interface {
	// Create persists a new service and fills in its generated id and timestamps.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a single service with its owning store user attached.
	FindByID(ctx context.Context, id uint) (*entity.Service, error)

	// Update persists the full current state of an existing service.
	Update(ctx context.Context, service *entity.Service) error

	// List returns services with owners attached. A non-empty term applies the
	// case-insensitive substring OR-match across name, price and description.
	List(ctx context.Context, term string) ([]*entity.Service, error)

	// NameExists reports whether a live service other than excludeID already
	// carries the given name.
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)

	// Delete soft-deletes a service by id.
	Delete(ctx context.Context, id uint) error
}
