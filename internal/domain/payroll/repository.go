package payroll

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
)

type PayrollRepository interface {
	Create(ctx context.Context, e PayrollEntry, typeIDs []int64) (PayrollEntry, error)
	GetByID(ctx context.Context, payrollID int64) (PayrollEntry, error)
	List(ctx context.Context, filter ListFilter) ([]PayrollEntry, error)
	Update(ctx context.Context, e PayrollEntry, typeIDs []int64) error
	Delete(ctx context.Context, payrollID int64) error

	// ExistsForPeriod reports whether the employee already has an entry for
	// the pay period, excluding the given payroll ID (0 for creates).
	ExistsForPeriod(ctx context.Context, employeeID, payPeriodID, excludePayrollID int64) (bool, error)

	// GetOwnership loads the employee state the access gate checks before a
	// payroll mutation.
	GetOwnership(ctx context.Context, employeeID int64) (EmployeeOwnership, error)

	ListPayPeriods(ctx context.Context) ([]PayPeriod, error)
	GetPayPeriod(ctx context.Context, payPeriodID int64) (PayPeriod, error)
	ListPayrollTypes(ctx context.Context) ([]PayrollType, error)
	ResolveTypeIDs(ctx context.Context, names []TypeName) ([]int64, error)

	// Summarize aggregates payroll per country, optionally restricted to the
	// caller's countries. Nil means all.
	Summarize(ctx context.Context, countries []country.Country) ([]CountrySummary, error)
}
