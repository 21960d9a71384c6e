package country

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Country
	}{
		{"India", India},
		{"india", India},
		{"FRANCE", France},
		{"usa", USA},
		{" USA ", USA},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := Parse("Germany")
	assert.ErrorIs(t, err, ErrUnknownCountry)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestCurrencyCode(t *testing.T) {
	assert.Equal(t, "INR", India.CurrencyCode())
	assert.Equal(t, "EUR", France.CurrencyCode())
	assert.Equal(t, "USD", USA.CurrencyCode())
	assert.Equal(t, "", Country("Germany").CurrencyCode())
}

func TestRulesFor_UnknownCountry(t *testing.T) {
	_, err := RulesFor(Country("Mars"))
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestProfileFields(t *testing.T) {
	fields, err := ProfileFields(India)
	require.NoError(t, err)
	assert.Equal(t, []string{"aadhar_number", "pan", "bank_account", "ifsc"}, fields)

	fields, err = ProfileFields(France)
	require.NoError(t, err)
	assert.Equal(t, []string{"numero_securite_sociale", "bank_iban", "department_code"}, fields)

	fields, err = ProfileFields(USA)
	require.NoError(t, err)
	assert.Equal(t, []string{"ssn", "bank_account", "routing_number"}, fields)
}

func TestIndiaFormula(t *testing.T) {
	rules, err := RulesFor(India)
	require.NoError(t, err)

	b := rules.Formula(decimal.NewFromInt(50000))

	additions := lineMap(b.Additions)
	deductions := lineMap(b.Deductions)

	assert.True(t, additions["hra"].Equal(decimal.NewFromInt(20000)))
	assert.True(t, additions["lta"].Equal(decimal.NewFromInt(5000)))
	assert.True(t, deductions["provident_fund"].Equal(decimal.NewFromInt(6000)))
	// 0.75% of 50000 is 375, capped at 150
	assert.True(t, deductions["esic"].Equal(decimal.NewFromInt(150)))
	assert.True(t, deductions["professional_tax"].Equal(decimal.NewFromInt(200)))
}

func TestIndiaFormula_ESICBelowCap(t *testing.T) {
	rules, err := RulesFor(India)
	require.NoError(t, err)

	b := rules.Formula(decimal.NewFromInt(10000))
	deductions := lineMap(b.Deductions)
	// 0.75% of 10000 = 75, under the 150 cap
	assert.True(t, deductions["esic"].Equal(decimal.NewFromInt(75)))
}

func TestFranceFormula(t *testing.T) {
	rules, err := RulesFor(France)
	require.NoError(t, err)

	b := rules.Formula(decimal.NewFromInt(3600))

	additions := lineMap(b.Additions)
	deductions := lineMap(b.Deductions)

	assert.True(t, additions["thirteenth_month_bonus"].Equal(decimal.NewFromInt(300)))
	assert.True(t, additions["transport_allowance"].Equal(decimal.NewFromInt(50)))
	assert.True(t, deductions["social_security"].Equal(decimal.RequireFromString("820.8")))
	assert.True(t, deductions["mutuelle_sante"].Equal(decimal.NewFromInt(90)))
}

func TestUSAFormula(t *testing.T) {
	rules, err := RulesFor(USA)
	require.NoError(t, err)

	b := rules.Formula(decimal.NewFromInt(4000))
	additions := lineMap(b.Additions)
	deductions := lineMap(b.Deductions)

	assert.True(t, deductions["social_security_tax"].Equal(decimal.NewFromInt(248)))
	assert.True(t, deductions["medicare"].Equal(decimal.NewFromInt(58)))
	assert.True(t, deductions["federal_tax"].Equal(decimal.NewFromInt(880)))
	assert.True(t, deductions["state_tax"].Equal(decimal.NewFromInt(200)))
	assert.True(t, deductions["401k"].Equal(decimal.NewFromInt(240)))
	// Variable components default to zero
	assert.True(t, additions["stock_options"].IsZero())
	assert.True(t, deductions["union_dues"].IsZero())
}

// Every formula component must be non-negative for any non-negative salary.
func TestFormulas_NonNegativeComponents(t *testing.T) {
	salaries := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(1),
		decimal.RequireFromString("1234.56"),
		decimal.NewFromInt(50000),
		decimal.NewFromInt(10000000),
	}

	for _, c := range All() {
		rules, err := RulesFor(c)
		require.NoError(t, err)
		for _, s := range salaries {
			b := rules.Formula(s)
			for _, l := range append(b.Additions, b.Deductions...) {
				assert.False(t, l.Amount.IsNegative(),
					"%s %s should be non-negative for basic %s", c, l.Code, s)
			}
		}
	}
}

func TestBreakdownTotals(t *testing.T) {
	b := Breakdown{
		Additions: []Line{
			{Code: "a", Amount: decimal.NewFromInt(10)},
			{Code: "b", Amount: decimal.NewFromInt(5)},
		},
		Deductions: []Line{
			{Code: "c", Amount: decimal.NewFromInt(3)},
		},
	}
	assert.True(t, b.TotalAdditions().Equal(decimal.NewFromInt(15)))
	assert.True(t, b.TotalDeductions().Equal(decimal.NewFromInt(3)))
}

func lineMap(lines []Line) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		m[l.Code] = l.Amount
	}
	return m
}
