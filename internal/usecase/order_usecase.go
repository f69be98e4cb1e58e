// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateOrderInput defines the data required to create an order.
// The owning store user is never part of the input: it is always taken from
// the authenticated caller.
type CreateOrderInput struct {
	BusinessID    uint   `json:"business_id" validate:"required"`
	Services      string `json:"services" validate:"required,max=255"`
	Description   string `json:"description"`
	Status        int    `json:"status" validate:"gte=0,lte=255"`
	FullPrice     string `json:"full_price" validate:"required,money"`
	FeePrice      string `json:"fee_price" validate:"omitempty,money"`
	ProfitPrice   string `json:"profit_price" validate:"omitempty,money"`
	Discount      string `json:"discount" validate:"omitempty,money"`
	ServiceUserID *uint  `json:"service_user_id"`
}

// UpdateOrderInput carries a partial order update. A nil field was absent from
// the payload and leaves the stored value unchanged; a non-nil field is
// applied even when it holds the zero value.
type UpdateOrderInput struct {
	BusinessID    *uint   `json:"business_id"`
	Services      *string `json:"services" validate:"omitempty,max=255"`
	Description   *string `json:"description"`
	Status        *int    `json:"status" validate:"omitempty,gte=0,lte=255"`
	FullPrice     *string `json:"full_price" validate:"omitempty,money"`
	FeePrice      *string `json:"fee_price" validate:"omitempty,money"`
	ProfitPrice   *string `json:"profit_price" validate:"omitempty,money"`
	Discount      *string `json:"discount" validate:"omitempty,money"`
	ServiceUserID *uint   `json:"service_user_id"`
}

// OrderUsecase defines the order lifecycle core: creation, mutation, the
// owner-scoped listing and the public lookup.
type OrderUsecase interface {
	// Create persists a new order owned by storeUserID and dispatches the
	// "new-service" notification to the business mobile. The notification
	// outcome never affects the returned result.
	Create(ctx context.Context, storeUserID uint, input *CreateOrderInput) (*OrderView, error)

	// Update applies a partial update to the order identified by orderID.
	// The caller must own the order or carry the ADMIN role. When the update
	// changes the assigned service worker, the "serviceman-sms" notification
	// is dispatched to the new worker's phone.
	Update(ctx context.Context, caller Caller, orderID uint, input *UpdateOrderInput) (*OrderView, error)

	// List returns the caller's orders, most recent first, optionally
	// filtered by the free-text search term.
	List(ctx context.Context, storeUserID uint, term string) ([]*OrderView, error)

	// Lookup returns a single order by id. It intentionally performs no
	// ownership check: the public endpoint exposes orders by opaque id only.
	Lookup(ctx context.Context, orderID uint) (*OrderView, error)

	// Delete soft-deletes the order. Same authorization rule as Update.
	Delete(ctx context.Context, caller Caller, orderID uint) error
}

// Caller identifies the authenticated account performing an operation.
type Caller struct {
	UserID uint
	Roles  entity.Roles
}
