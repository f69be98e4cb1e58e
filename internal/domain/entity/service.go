package entity

import "time"

// Service is a catalog entry: a named, priced offering owned by a store user.
// Name is unique across live services. Orders describe what was ordered in a
// free-text field, so Service is not strictly foreign-keyed from Order.
type Service struct {
	ID          uint
	Name        string
	Price       string // Decimal-as-string.
	Description string
	StoreUserID uint
	StoreUser   *User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
