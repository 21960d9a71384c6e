package user

import (
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/stretchr/testify/assert"
)

func TestPolicyFor_GlobalAdmin(t *testing.T) {
	policy := PolicyFor(RoleAdmin)

	assert.True(t, policy.ViewAllCountries)
	assert.ElementsMatch(t, country.All(), policy.AllowedCountries)
	assert.True(t, policy.CanCreatePayroll)
	assert.True(t, policy.CanEditPayroll)
	assert.True(t, policy.CanDeletePayroll)
	assert.True(t, policy.CanManageEmployeeStatus)
}

func TestPolicyFor_CountryAdmins(t *testing.T) {
	cases := []struct {
		role Role
		want country.Country
	}{
		{RoleIndiaAdmin, country.India},
		{RoleFranceAdmin, country.France},
		{RoleUSAdmin, country.USA},
	}

	for _, c := range cases {
		policy := PolicyFor(c.role)
		assert.False(t, policy.ViewAllCountries, "%s", c.role)
		assert.Equal(t, []country.Country{c.want}, policy.AllowedCountries)
		assert.True(t, policy.CanCreatePayroll)
		assert.True(t, policy.CanEditPayroll)
		// Delete is reserved for the global admin
		assert.False(t, policy.CanDeletePayroll, "%s", c.role)
		assert.True(t, policy.CanManageEmployeeStatus)
	}
}

// An unrecognized role must resolve to the zero policy, never an error.
func TestPolicyFor_UnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []Role{"", "superuser", "employee", "ADMIN"} {
		policy := PolicyFor(role)
		assert.False(t, policy.ViewAllCountries, "%q", role)
		assert.Empty(t, policy.AllowedCountries, "%q", role)
		assert.False(t, policy.CanCreatePayroll, "%q", role)
		assert.False(t, policy.CanEditPayroll, "%q", role)
		assert.False(t, policy.CanDeletePayroll, "%q", role)
		assert.False(t, policy.CanManageEmployeeStatus, "%q", role)
	}
}

func TestAllowedCountry(t *testing.T) {
	c, ok := AllowedCountry(RoleIndiaAdmin)
	assert.True(t, ok)
	assert.Equal(t, country.India, c)

	c, ok = AllowedCountry(RoleFranceAdmin)
	assert.True(t, ok)
	assert.Equal(t, country.France, c)

	c, ok = AllowedCountry(RoleUSAdmin)
	assert.True(t, ok)
	assert.Equal(t, country.USA, c)

	// Global admin is unrestricted
	_, ok = AllowedCountry(RoleAdmin)
	assert.False(t, ok)

	// Unknown role has no countries at all
	_, ok = AllowedCountry(Role("intern"))
	assert.False(t, ok)
}

// AllowedCountry must be stable across calls.
func TestAllowedCountry_Idempotent(t *testing.T) {
	first, ok1 := AllowedCountry(RoleFranceAdmin)
	second, ok2 := AllowedCountry(RoleFranceAdmin)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestCanAccessCountry(t *testing.T) {
	for _, c := range country.All() {
		assert.True(t, CanAccessCountry(RoleAdmin, c))
	}

	assert.True(t, CanAccessCountry(RoleIndiaAdmin, country.India))
	assert.False(t, CanAccessCountry(RoleIndiaAdmin, country.France))
	assert.False(t, CanAccessCountry(RoleIndiaAdmin, country.USA))

	assert.True(t, CanAccessCountry(RoleFranceAdmin, country.France))
	assert.False(t, CanAccessCountry(RoleFranceAdmin, country.India))

	assert.True(t, CanAccessCountry(RoleUSAdmin, country.USA))
	assert.False(t, CanAccessCountry(RoleUSAdmin, country.France))

	assert.False(t, CanAccessCountry(Role("unknown"), country.India))
}

func TestIsManagementRole(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, IsManagementRole(role))
	}
	assert.False(t, IsManagementRole(Role("viewer")))
	assert.False(t, IsManagementRole(Role("")))
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Global Admin", RoleAdmin.DisplayName())
	assert.Equal(t, "India Admin", RoleIndiaAdmin.DisplayName())
	assert.Equal(t, "France Admin", RoleFranceAdmin.DisplayName())
	assert.Equal(t, "USA Admin", RoleUSAdmin.DisplayName())
	assert.Equal(t, "Unknown Role", Role("other").DisplayName())
}
