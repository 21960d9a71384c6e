package payroll

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
)

type PayrollService interface {
	Create(ctx context.Context, actor user.Actor, req CreatePayrollRequest) (PayrollDetailResponse, error)
	Get(ctx context.Context, actor user.Actor, payrollID int64) (PayrollDetailResponse, error)
	// List scopes to the actor's country for scoped admins; a global admin
	// may narrow with the query's country.
	List(ctx context.Context, actor user.Actor, q ListQuery) ([]PayrollResponse, error)
	Update(ctx context.Context, actor user.Actor, req UpdatePayrollRequest) (PayrollDetailResponse, error)
	// Delete is reserved for the global admin. Deactivated employees do not
	// block deletion; cleanup of stale records stays possible.
	Delete(ctx context.Context, actor user.Actor, payrollID int64) error

	// ListPayPeriodsFor returns pay periods matching the employee's country
	// cadence, for populating a creation form.
	ListPayPeriodsFor(ctx context.Context, actor user.Actor, employeeID int64) ([]PayPeriodResponse, error)
	ListPayrollTypes(ctx context.Context) ([]PayrollTypeResponse, error)
}
