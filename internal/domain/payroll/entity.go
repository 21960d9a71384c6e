package payroll

import (
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/shopspring/decimal"
)

// TypeName enumerates the selectable payroll components. Selection gates
// which inputs contribute to the persisted net pay.
type TypeName string

const (
	TypeRegular    TypeName = "Regular"
	TypeBonus      TypeName = "Bonus"
	TypeCommission TypeName = "Commission"
	TypeOvertime   TypeName = "Overtime"
)

// PayrollType is a reference row for a selectable payroll component.
type PayrollType struct {
	ID   int64
	Name string
}

// PayPeriod is shared reference data; periods are filtered by the owning
// country's cadence when offered to a creation flow, not owned per country.
type PayPeriod struct {
	ID          int64
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Days returns the period span in whole days, rounding partial days up.
func (p PayPeriod) Days() int {
	hours := p.PeriodEnd.Sub(p.PeriodStart).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// PayrollEntry is the persisted payroll row. Bonus folds in commission at
// rest; net pay is the quick-create amount (basic plus selected-type
// contributions), never the country-formula result.
type PayrollEntry struct {
	ID                   int64
	EmployeeID           int64
	PayPeriodID          int64
	PrimaryPayrollTypeID int64
	BasicSalary          decimal.Decimal
	Bonus                decimal.Decimal
	OvertimeHours        decimal.Decimal
	OvertimeRate         decimal.Decimal
	NetPay               decimal.Decimal
	CreatedAt            time.Time

	// Joined fields
	EmployeeName *string
	CountryName  *country.Country
	CurrencyCode *string
	PeriodStart  *time.Time
	PeriodEnd    *time.Time
	TypeNames    []string
}

// EmployeeOwnership is the slice of employee state the access gate needs
// before a payroll mutation.
type EmployeeOwnership struct {
	EmployeeID int64
	FullName   string
	Country    country.Country
	IsActive   bool
}
