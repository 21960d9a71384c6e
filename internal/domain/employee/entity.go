package employee

import (
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
)

// Employee is the country-owned base record. IDs are externally assigned.
// Employees are never hard-deleted; deactivation blocks further payroll
// mutation while preserving historical payroll rows.
type Employee struct {
	EmployeeID   int64
	FullName     string
	DateOfBirth  *time.Time
	StartDate    *time.Time
	Country      country.Country
	CurrencyCode string
	IsActive     bool
	CreatedBy    *int64
	CreatedAt    time.Time
}

// IndiaProfile holds the Indian identity and banking fields.
type IndiaProfile struct {
	AadhaarNumber string
	PAN           string
	BankAccount   string
	IFSC          string
}

// FranceProfile holds the French identity and banking fields.
type FranceProfile struct {
	SocialSecurityNumber string
	BankIBAN             string
	DepartmentCode       string
}

// USAProfile holds the USA identity and banking fields.
type USAProfile struct {
	SSN           string
	BankAccount   string
	RoutingNumber string
}

// CountryProfile is the tagged variant attached to an employee. Exactly one
// of the three variants is set, matching the employee's country.
type CountryProfile struct {
	Country country.Country
	India   *IndiaProfile
	France  *FranceProfile
	USA     *USAProfile
}

// Matches reports whether the populated variant agrees with the tag.
func (p CountryProfile) Matches() bool {
	switch p.Country {
	case country.India:
		return p.India != nil && p.France == nil && p.USA == nil
	case country.France:
		return p.France != nil && p.India == nil && p.USA == nil
	case country.USA:
		return p.USA != nil && p.India == nil && p.France == nil
	}
	return false
}
