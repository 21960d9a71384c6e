package payroll

import (
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID    int64           `json:"employee_id"`
	PayPeriodID   int64           `json:"pay_period_id"`
	PayrollTypes  []string        `json:"payroll_types"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Commission    decimal.Decimal `json:"commission"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive number"})
	}
	if r.PayPeriodID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "pay_period_id", Message: "must be a positive number"})
	}
	if len(r.PayrollTypes) == 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_types", Message: "at least one type must be selected"})
	}
	for _, name := range r.PayrollTypes {
		switch TypeName(name) {
		case TypeRegular, TypeBonus, TypeCommission, TypeOvertime:
		default:
			errs = append(errs, validator.ValidationError{Field: "payroll_types", Message: "unknown payroll type: " + name})
		}
	}
	for field, amount := range map[string]decimal.Decimal{
		"basic_salary":   r.BasicSalary,
		"bonus":          r.Bonus,
		"commission":     r.Commission,
		"overtime_hours": r.OvertimeHours,
		"overtime_rate":  r.OvertimeRate,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SelectedTypes converts the request's type names. Validate must have
// passed first.
func (r *CreatePayrollRequest) SelectedTypes() []TypeName {
	types := make([]TypeName, 0, len(r.PayrollTypes))
	for _, name := range r.PayrollTypes {
		types = append(types, TypeName(name))
	}
	return types
}

// CalculationInput builds the calculator input from the request.
func (r *CreatePayrollRequest) CalculationInput() CalculationInput {
	return CalculationInput{
		BasicSalary:   r.BasicSalary,
		Bonus:         r.Bonus,
		Commission:    r.Commission,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,
		SelectedTypes: r.SelectedTypes(),
	}
}

type UpdatePayrollRequest struct {
	PayrollID     int64           `json:"-"`
	PayPeriodID   int64           `json:"pay_period_id"`
	PayrollTypes  []string        `json:"payroll_types"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Commission    decimal.Decimal `json:"commission"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

func (r *UpdatePayrollRequest) Validate() error {
	create := CreatePayrollRequest{
		EmployeeID:    1, // not part of an update payload
		PayPeriodID:   r.PayPeriodID,
		PayrollTypes:  r.PayrollTypes,
		BasicSalary:   r.BasicSalary,
		Bonus:         r.Bonus,
		Commission:    r.Commission,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,
	}
	return create.Validate()
}

func (r *UpdatePayrollRequest) CalculationInput() CalculationInput {
	types := make([]TypeName, 0, len(r.PayrollTypes))
	for _, name := range r.PayrollTypes {
		types = append(types, TypeName(name))
	}
	return CalculationInput{
		BasicSalary:   r.BasicSalary,
		Bonus:         r.Bonus,
		Commission:    r.Commission,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,
		SelectedTypes: types,
	}
}

// ListQuery carries the caller-facing list parameters. Page/PerPage of zero
// mean "no pagination".
type ListQuery struct {
	Country     *string
	PayPeriodID *int64
	EmployeeID  *int64
	Search      *string
	Page        int
	PerPage     int
}

// ListFilter narrows the payroll list at the repository. Country comes from
// the caller's role for scoped admins and from the query string for global
// admins. A zero Limit disables pagination.
type ListFilter struct {
	Country     *country.Country
	PayPeriodID *int64
	EmployeeID  *int64
	Search      *string
	Limit       int
	Offset      int
}

type PayrollResponse struct {
	PayrollID     int64           `json:"payroll_id"`
	EmployeeID    int64           `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	CountryName   string          `json:"country_name,omitempty"`
	CurrencyCode  string          `json:"currency_code,omitempty"`
	PayPeriodID   int64           `json:"pay_period_id"`
	PeriodStart   *string         `json:"period_start,omitempty"`
	PeriodEnd     *string         `json:"period_end,omitempty"`
	PayrollTypes  []string        `json:"payroll_types,omitempty"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	NetPay        decimal.Decimal `json:"net_pay"`
	CreatedAt     string          `json:"created_at"`
}

// PayrollDetailResponse adds the country-formula breakdown, shown on the
// detail page only.
type PayrollDetailResponse struct {
	PayrollResponse
	Breakdown country.Breakdown `json:"breakdown"`
	GrossPay  decimal.Decimal   `json:"gross_pay"`
}

type PayPeriodResponse struct {
	PayPeriodID int64  `json:"pay_period_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type PayrollTypeResponse struct {
	PayrollTypeID int64  `json:"payroll_type_id"`
	Name          string `json:"name"`
}

// CountrySummary aggregates payroll per country for the dashboard.
type CountrySummary struct {
	CountryName   string          `json:"country_name"`
	CurrencyCode  string          `json:"currency_code"`
	EmployeeCount int64           `json:"employee_count"`
	PayrollCount  int64           `json:"payroll_count"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
	AverageNetPay decimal.Decimal `json:"average_net_pay"`
}

// SummaryResponse is the dashboard view. Net pay totals stay per country;
// currencies are never summed across countries.
type SummaryResponse struct {
	Countries      []CountrySummary  `json:"countries"`
	TotalEmployees int64             `json:"total_employees"`
	TotalPayrolls  int64             `json:"total_payrolls"`
	Recent         []PayrollResponse `json:"recent"`
}

// NewPayrollResponse maps the entity, including joined fields when present.
func NewPayrollResponse(e PayrollEntry) PayrollResponse {
	resp := PayrollResponse{
		PayrollID:     e.ID,
		EmployeeID:    e.EmployeeID,
		PayPeriodID:   e.PayPeriodID,
		PayrollTypes:  e.TypeNames,
		BasicSalary:   e.BasicSalary,
		Bonus:         e.Bonus,
		OvertimeHours: e.OvertimeHours,
		OvertimeRate:  e.OvertimeRate,
		NetPay:        e.NetPay,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
	if e.EmployeeName != nil {
		resp.EmployeeName = *e.EmployeeName
	}
	if e.CountryName != nil {
		resp.CountryName = string(*e.CountryName)
	}
	if e.CurrencyCode != nil {
		resp.CurrencyCode = *e.CurrencyCode
	}
	if e.PeriodStart != nil {
		s := e.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &s
	}
	if e.PeriodEnd != nil {
		s := e.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &s
	}
	return resp
}
