package user

import "github.com/globepay-hr/payroll-backend-go/internal/domain/country"

// Policy is the access policy derived from an admin role. It is the single
// source of truth for permissions; nothing else branches on the role string.
type Policy struct {
	ViewAllCountries        bool
	AllowedCountries        []country.Country
	CanCreatePayroll        bool
	CanEditPayroll          bool
	CanDeletePayroll        bool
	CanManageEmployeeStatus bool
}

// rolePolicies maps roles to their access policies. Only the global admin
// may delete payroll; every admin role may create/edit payroll and toggle
// employee status within its allowed countries.
var rolePolicies = map[Role]Policy{
	RoleAdmin: {
		ViewAllCountries:        true,
		AllowedCountries:        country.All(),
		CanCreatePayroll:        true,
		CanEditPayroll:          true,
		CanDeletePayroll:        true,
		CanManageEmployeeStatus: true,
	},
	RoleIndiaAdmin: {
		AllowedCountries:        []country.Country{country.India},
		CanCreatePayroll:        true,
		CanEditPayroll:          true,
		CanManageEmployeeStatus: true,
	},
	RoleFranceAdmin: {
		AllowedCountries:        []country.Country{country.France},
		CanCreatePayroll:        true,
		CanEditPayroll:          true,
		CanManageEmployeeStatus: true,
	},
	RoleUSAdmin: {
		AllowedCountries:        []country.Country{country.USA},
		CanCreatePayroll:        true,
		CanEditPayroll:          true,
		CanManageEmployeeStatus: true,
	},
}

// PolicyFor resolves the access policy for a role. An unrecognized role
// yields the zero policy: no countries, no permissions. Fail closed.
func PolicyFor(role Role) Policy {
	return rolePolicies[role]
}

// AllowedCountry returns the single country a role is restricted to.
// ok is false when the role is unrestricted (global admin) or unknown.
func AllowedCountry(role Role) (country.Country, bool) {
	policy := PolicyFor(role)
	if policy.ViewAllCountries || len(policy.AllowedCountries) != 1 {
		return "", false
	}
	return policy.AllowedCountries[0], true
}

// CanAccessCountry reports whether a role may read/write data owned by c.
func CanAccessCountry(role Role, c country.Country) bool {
	policy := PolicyFor(role)
	if policy.ViewAllCountries {
		return true
	}
	for _, allowed := range policy.AllowedCountries {
		if allowed == c {
			return true
		}
	}
	return false
}

// IsManagementRole reports whether the role may manage employees at all.
// True for every valid admin role.
func IsManagementRole(role Role) bool {
	return IsValidRole(role)
}

// RestrictionMessage describes the role's country scope for display.
func RestrictionMessage(role Role) string {
	switch role {
	case RoleAdmin:
		return "You have access to all countries"
	case RoleIndiaAdmin:
		return "You can only manage Indian employees and payroll"
	case RoleFranceAdmin:
		return "You can only manage French employees and payroll"
	case RoleUSAdmin:
		return "You can only manage USA employees and payroll"
	}
	return "Access restricted"
}
