package employee

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, employeeID int64) (Employee, error)
	// List returns employees ordered by creation time, optionally restricted
	// to a single country. A nil filter means all countries.
	List(ctx context.Context, countryFilter *country.Country) ([]Employee, error)
	UpdateBase(ctx context.Context, e Employee) error
	SetActive(ctx context.Context, employeeID int64, isActive bool) error

	GetProfile(ctx context.Context, employeeID int64, c country.Country) (CountryProfile, error)
	UpsertProfile(ctx context.Context, employeeID int64, profile CountryProfile) error
}
