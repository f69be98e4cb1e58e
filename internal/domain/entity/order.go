package entity

import "time"

// Order is the transactional record binding a Business, the owning store user,
// an optional assigned service worker, and the monetary fields.
//
// StoreUserID is set exactly once at creation from the authenticated caller
// and is never client-mutable. Status is an opaque small integer; its meaning
// is enumerated by the clients.
type Order struct {
	ID            uint
	BusinessID    uint
	Services      string // Free-text description of what was ordered.
	Description   string
	Status        int
	FullPrice     string // Decimal-as-string.
	FeePrice      string
	ProfitPrice   string
	Discount      string
	ServiceUserID *uint // Optional assigned worker.
	StoreUserID   uint

	Business    *Business // Loaded for responses and SMS token values.
	StoreUser   *User
	ServiceUser *User

	CreatedAt time.Time
	UpdatedAt time.Time
}
