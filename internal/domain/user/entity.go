package user

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"        // Global admin - all countries, may delete payroll
	RoleIndiaAdmin  Role = "india_admin"  // Scoped to Indian employees and payroll
	RoleFranceAdmin Role = "france_admin" // Scoped to French employees and payroll
	RoleUSAdmin     Role = "us_admin"     // Scoped to USA employees and payroll
)

// ValidRoles is the closed set of admin roles. Anything else resolves to
// the zero policy.
var ValidRoles = []Role{RoleAdmin, RoleIndiaAdmin, RoleFranceAdmin, RoleUSAdmin}

// User is an administrator account. There is no non-admin role in this
// system; an absent session is "unauthenticated", not a role.
type User struct {
	ID           int64
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
}

// Actor is the authenticated admin performing a request, as carried in the
// access token claims.
type Actor struct {
	UserID int64
	Email  string
	Role   Role
}

// IsValidRole reports whether role is one of the four admin roles.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsGlobalAdmin checks if user has unrestricted country access
func (u *User) IsGlobalAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns the human-readable role name.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Global Admin"
	case RoleIndiaAdmin:
		return "India Admin"
	case RoleFranceAdmin:
		return "France Admin"
	case RoleUSAdmin:
		return "USA Admin"
	}
	return "Unknown Role"
}
