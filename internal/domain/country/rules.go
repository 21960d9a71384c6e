package country

import "github.com/shopspring/decimal"

// Line is a single named amount inside a payroll breakdown.
type Line struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown carries the country-formula additions and deductions derived
// from a basic salary. The breakdown is informational: it is shown on the
// payroll detail view and never folded into the persisted net pay.
type Breakdown struct {
	Additions  []Line `json:"additions"`
	Deductions []Line `json:"deductions"`
}

// TotalDeductions sums all deduction lines.
func (b Breakdown) TotalDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Deductions {
		total = total.Add(l.Amount)
	}
	return total
}

// TotalAdditions sums all addition lines.
func (b Breakdown) TotalAdditions() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Additions {
		total = total.Add(l.Amount)
	}
	return total
}

// Rules describes everything that differs per country: the identity/bank
// fields on the employee profile, the statutory payroll formula, and the
// accepted pay-period span in days.
type Rules struct {
	ProfileFields []string
	Formula       func(basicSalary decimal.Decimal) Breakdown
	PeriodMinDays int
	PeriodMaxDays int
}

var ruleTable = map[Country]Rules{
	India: {
		ProfileFields: []string{"aadhar_number", "pan", "bank_account", "ifsc"},
		Formula:       indiaFormula,
		PeriodMinDays: 25,
		PeriodMaxDays: 35,
	},
	France: {
		ProfileFields: []string{"numero_securite_sociale", "bank_iban", "department_code"},
		Formula:       franceFormula,
		PeriodMinDays: 25,
		PeriodMaxDays: 35,
	},
	USA: {
		ProfileFields: []string{"ssn", "bank_account", "routing_number"},
		Formula:       usaFormula,
		// Bi-weekly cadence
		PeriodMinDays: 10,
		PeriodMaxDays: 20,
	},
}

// RulesFor returns the rule set for a country.
func RulesFor(c Country) (Rules, error) {
	rules, ok := ruleTable[c]
	if !ok {
		return Rules{}, ErrUnknownCountry
	}
	return rules, nil
}

// ProfileFields returns the ordered identity/bank field names a country's
// employee profile requires.
func ProfileFields(c Country) ([]string, error) {
	rules, err := RulesFor(c)
	if err != nil {
		return nil, err
	}
	return rules.ProfileFields, nil
}

func pct(base decimal.Decimal, percent string) decimal.Decimal {
	return base.Mul(decimal.RequireFromString(percent))
}

func indiaFormula(basic decimal.Decimal) Breakdown {
	esic := pct(basic, "0.0075")
	esicCap := decimal.NewFromInt(150)
	if esic.GreaterThan(esicCap) {
		esic = esicCap
	}

	return Breakdown{
		Additions: []Line{
			{Code: "hra", Label: "House Rent Allowance", Amount: pct(basic, "0.4")},
			{Code: "lta", Label: "Leave Travel Allowance", Amount: pct(basic, "0.1")},
			{Code: "gratuity", Label: "Gratuity", Amount: pct(basic, "0.04807")},
		},
		Deductions: []Line{
			{Code: "provident_fund", Label: "Provident Fund", Amount: pct(basic, "0.12")},
			{Code: "esic", Label: "ESIC", Amount: esic},
			{Code: "professional_tax", Label: "Professional Tax", Amount: decimal.NewFromInt(200)},
		},
	}
}

func franceFormula(basic decimal.Decimal) Breakdown {
	return Breakdown{
		Additions: []Line{
			{Code: "thirteenth_month_bonus", Label: "13th Month Bonus", Amount: basic.Div(decimal.NewFromInt(12))},
			{Code: "transport_allowance", Label: "Transport Allowance", Amount: decimal.NewFromInt(50)},
		},
		Deductions: []Line{
			{Code: "mutuelle_sante", Label: "Mutuelle Santé", Amount: pct(basic, "0.025")},
			{Code: "prevoyance", Label: "Prévoyance", Amount: pct(basic, "0.015")},
			{Code: "social_security", Label: "Social Security", Amount: pct(basic, "0.228")},
			{Code: "retirement_contribution", Label: "Retirement Contribution", Amount: pct(basic, "0.0751")},
			{Code: "unemployment_insurance", Label: "Unemployment Insurance", Amount: pct(basic, "0.057")},
		},
	}
}

func usaFormula(basic decimal.Decimal) Breakdown {
	return Breakdown{
		Additions: []Line{
			// Variable components; zero unless separately supplied
			{Code: "stock_options", Label: "Stock Options", Amount: decimal.Zero},
		},
		Deductions: []Line{
			{Code: "health_insurance", Label: "Health Insurance", Amount: pct(basic, "0.05")},
			{Code: "dental", Label: "Dental", Amount: pct(basic, "0.01")},
			{Code: "vision", Label: "Vision", Amount: pct(basic, "0.005")},
			{Code: "union_dues", Label: "Union Dues", Amount: decimal.Zero},
			{Code: "city_tax", Label: "City Tax", Amount: pct(basic, "0.01")},
			{Code: "social_security_tax", Label: "Social Security", Amount: pct(basic, "0.062")},
			{Code: "medicare", Label: "Medicare", Amount: pct(basic, "0.0145")},
			{Code: "401k", Label: "401(k)", Amount: pct(basic, "0.06")},
			{Code: "federal_tax", Label: "Federal Tax", Amount: pct(basic, "0.22")},
			{Code: "state_tax", Label: "State Tax", Amount: pct(basic, "0.05")},
		},
	}
}
