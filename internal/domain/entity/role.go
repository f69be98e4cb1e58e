// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular store-operator account.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator. Admins satisfy every role check.
	RoleAdmin Role = "ADMIN"
	// RoleServiceWorker indicates a worker who can be assigned to orders.
	RoleServiceWorker Role = "SERVICE_WORKER"
	// RoleVisitor indicates a read-mostly visitor account.
	RoleVisitor Role = "VISITOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleServiceWorker, RoleVisitor:
		return true
	default:
		return false
	}
}

// Roles is a set of Role values carried by a user.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Satisfies reports whether this role set passes a check for the given role.
// RoleAdmin passes any check; every other role requires exact membership.
func (rs Roles) Satisfies(role Role) bool {
	if rs.Contains(RoleAdmin) {
		return true
	}

	return rs.Contains(role)
}

// ToStrings converts Roles to []string for JWT claim compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
