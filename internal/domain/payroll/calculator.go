package payroll

import (
	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/shopspring/decimal"
)

// CalculationInput carries the raw amounts entered for a payroll entry.
// Bonus and commission are distinct on input but merge into a single stored
// bonus amount; the data model does not distinguish them at rest.
type CalculationInput struct {
	BasicSalary   decimal.Decimal
	Bonus         decimal.Decimal
	Commission    decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal
	SelectedTypes []TypeName
}

// Calculation is the full result. NetPay is what gets persisted; the
// Breakdown is the country-formula view shown on the detail page and is
// deliberately excluded from NetPay.
type Calculation struct {
	BasicSalary decimal.Decimal   `json:"basic_salary"`
	StoredBonus decimal.Decimal   `json:"bonus"`
	OvertimePay decimal.Decimal   `json:"overtime_pay"`
	GrossPay    decimal.Decimal   `json:"gross_pay"`
	NetPay      decimal.Decimal   `json:"net_pay"`
	Breakdown   country.Breakdown `json:"breakdown"`
	Currency    string            `json:"currency"`
}

// Calculate computes the persisted net pay and the display breakdown for a
// payroll entry.
//
// Contribution is gated by type selection: overtime hours/rate count only
// when Overtime is among the selected types, and the merged bonus amount
// counts only when Bonus or Commission is selected, even if the caller
// passed nonzero values.
func Calculate(c country.Country, in CalculationInput) (Calculation, error) {
	rules, err := country.RulesFor(c)
	if err != nil {
		return Calculation{}, err
	}

	if len(in.SelectedTypes) == 0 {
		return Calculation{}, ErrNoPayrollTypeSelected
	}
	for _, amount := range []decimal.Decimal{in.BasicSalary, in.Bonus, in.Commission, in.OvertimeHours, in.OvertimeRate} {
		if amount.IsNegative() {
			return Calculation{}, ErrNegativeAmount
		}
	}

	storedBonus := in.Bonus.Add(in.Commission)
	overtimePay := in.OvertimeHours.Mul(in.OvertimeRate)

	bonusSelected := false
	overtimeSelected := false
	for _, t := range in.SelectedTypes {
		switch t {
		case TypeBonus, TypeCommission:
			bonusSelected = true
		case TypeOvertime:
			overtimeSelected = true
		}
	}

	appliedBonus := decimal.Zero
	if bonusSelected {
		appliedBonus = storedBonus
	}
	appliedOvertime := decimal.Zero
	if overtimeSelected {
		appliedOvertime = overtimePay
	}

	netPay := in.BasicSalary.Add(appliedBonus).Add(appliedOvertime)

	return Calculation{
		BasicSalary: in.BasicSalary,
		StoredBonus: storedBonus,
		OvertimePay: appliedOvertime,
		GrossPay:    netPay,
		NetPay:      netPay,
		Breakdown:   rules.Formula(in.BasicSalary),
		Currency:    c.CurrencyCode(),
	}, nil
}
