package entity

import "time"

// Business is a customer record owned by a store user. Orders reference it.
// Mobile is unique across live (non-deleted) businesses; NationalID is unique
// across live businesses when present.
type Business struct {
	ID           uint
	Name         string // Owner first name.
	Family       string // Owner surname.
	BusinessName string
	Address      string
	Mobile       string // Receives order-created SMS notifications.
	Tell         string
	Zipcode      string
	NationalID   string
	StoreUserID  uint  // Owning store user; server-assigned.
	StoreUser    *User // Loaded on demand.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerFullName returns the "name_family" token form used in SMS templates.
func (b *Business) OwnerFullName() string {
	return b.Name + "_" + b.Family
}
