package entity

import "time"

// User is the account entity. A user acting as a store operator owns
// businesses, services and orders; a user carrying the SERVICE_WORKER role can
// additionally be assigned to fulfil an order.
type User struct {
	ID           uint      // Auto-incrementing identifier.
	Name         string    // First name.
	Family       string    // Surname.
	Email        string    // Login identifier, unique.
	Phone        string    // Mobile number used for worker SMS notifications.
	PasswordHash string    // bcrypt hash; never serialized outward.
	Roles        Roles     // Role set; defaults to {USER} on creation.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the "name family" display form.
func (u *User) FullName() string {
	if u.Family == "" {
		return u.Name
	}

	return u.Name + " " + u.Family
}
