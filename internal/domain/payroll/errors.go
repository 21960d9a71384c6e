package payroll

import "errors"

var (
	ErrPayrollNotFound        = errors.New("payroll record not found")
	ErrPayrollExistsForPeriod = errors.New("payroll already exists for this employee in the selected period")
	ErrNoPayrollTypeSelected  = errors.New("at least one payroll type must be selected")
	ErrNegativeAmount         = errors.New("amounts must be non-negative")
	ErrPayPeriodNotFound      = errors.New("pay period not found")
	ErrPayrollTypeNotFound    = errors.New("payroll type not found")
)
