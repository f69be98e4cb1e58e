package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_Satisfies_AdminBypassesEveryCheck(t *testing.T) {
	admin := Roles{RoleAdmin}

	assert.True(t, admin.Satisfies(RoleUser))
	assert.True(t, admin.Satisfies(RoleServiceWorker))
	assert.True(t, admin.Satisfies(RoleVisitor))
	assert.True(t, admin.Satisfies(RoleAdmin))
}

func TestRoles_Satisfies_NonAdminRequiresExactMembership(t *testing.T) {
	worker := Roles{RoleUser, RoleServiceWorker}

	assert.True(t, worker.Satisfies(RoleUser))
	assert.True(t, worker.Satisfies(RoleServiceWorker))
	assert.False(t, worker.Satisfies(RoleVisitor))
	assert.False(t, worker.Satisfies(RoleAdmin))
}

func TestRolesFromStrings_FiltersInvalidValues(t *testing.T) {
	roles := RolesFromStrings([]string{"USER", "ADMIN", "bogus", ""})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Sara Mohammadi", (&User{Name: "Sara", Family: "Mohammadi"}).FullName())
	assert.Equal(t, "Sara", (&User{Name: "Sara"}).FullName())
}
