package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
// All reads exclude soft-deleted rows; uniqueness checks consider only live rows.
type BusinessRepository interface {
	// Create persists a new business and fills in its generated id and timestamps.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a single business with its owning store user attached.
	FindByID(ctx context.Context, id uint) (*entity.Business, error)

	// Update persists the full current state of an existing business.
	Update(ctx context.Context, business *entity.Business) error

	// List returns businesses with owners attached. A non-empty term applies
	// the case-insensitive substring OR-match across name, family,
	// business_name, mobile and national_id.
	List(ctx context.Context, term string) ([]*entity.Business, error)

	// MobileExists reports whether a live business other than excludeID
	// already carries the given mobile number.
	MobileExists(ctx context.Context, mobile string, excludeID uint) (bool, error)

	// NationalIDExists reports whether a live business other than excludeID
	// already carries the given national id.
	NationalIDExists(ctx context.Context, nationalID string, excludeID uint) (bool, error)

	// Delete soft-deletes a business by id.
	Delete(ctx context.Context, id uint) error
}
