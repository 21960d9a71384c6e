package payroll

import (
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCalculate_IndiaBonusOnly(t *testing.T) {
	calc, err := Calculate(country.India, CalculationInput{
		BasicSalary:   d(50000),
		Bonus:         d(5000),
		SelectedTypes: []TypeName{TypeBonus},
	})
	require.NoError(t, err)

	// HRA/LTA and other formula lines never reach the persisted amount
	assert.True(t, calc.NetPay.Equal(d(55000)), "net pay = %s", calc.NetPay)
	assert.Equal(t, "INR", calc.Currency)
}

func TestCalculate_USAOvertimeOnly(t *testing.T) {
	calc, err := Calculate(country.USA, CalculationInput{
		BasicSalary:   d(4000),
		OvertimeHours: d(10),
		OvertimeRate:  d(25),
		SelectedTypes: []TypeName{TypeOvertime},
	})
	require.NoError(t, err)

	assert.True(t, calc.OvertimePay.Equal(d(250)))
	assert.True(t, calc.NetPay.Equal(d(4250)))
	assert.Equal(t, "USD", calc.Currency)
}

// Selection gates contribution: nonzero inputs for unselected types are
// treated as zero.
func TestCalculate_UnselectedTypesDoNotContribute(t *testing.T) {
	calc, err := Calculate(country.France, CalculationInput{
		BasicSalary:   d(3000),
		Bonus:         d(500),
		Commission:    d(200),
		OvertimeHours: d(8),
		OvertimeRate:  d(30),
		SelectedTypes: []TypeName{TypeRegular},
	})
	require.NoError(t, err)

	assert.True(t, calc.NetPay.Equal(d(3000)))
	assert.True(t, calc.OvertimePay.IsZero())
	// The merged amount is still reported for persistence as bonus-at-rest
	assert.True(t, calc.StoredBonus.Equal(d(700)))
}

func TestCalculate_BonusAndCommissionMerge(t *testing.T) {
	calc, err := Calculate(country.India, CalculationInput{
		BasicSalary:   d(10000),
		Bonus:         d(1000),
		Commission:    d(2000),
		SelectedTypes: []TypeName{TypeBonus, TypeCommission},
	})
	require.NoError(t, err)

	// Merged once, not double-counted
	assert.True(t, calc.StoredBonus.Equal(d(3000)))
	assert.True(t, calc.NetPay.Equal(d(13000)))
}

func TestCalculate_AllTypes(t *testing.T) {
	calc, err := Calculate(country.USA, CalculationInput{
		BasicSalary:   d(4000),
		Bonus:         d(300),
		Commission:    d(100),
		OvertimeHours: d(5),
		OvertimeRate:  d(40),
		SelectedTypes: []TypeName{TypeRegular, TypeBonus, TypeCommission, TypeOvertime},
	})
	require.NoError(t, err)

	assert.True(t, calc.NetPay.Equal(d(4600)))
	assert.True(t, calc.GrossPay.Equal(calc.NetPay))
}

// The country-formula breakdown is informational and must not reduce or
// increase the persisted net pay.
func TestCalculate_BreakdownExcluded(t *testing.T) {
	calc, err := Calculate(country.India, CalculationInput{
		BasicSalary:   d(50000),
		SelectedTypes: []TypeName{TypeRegular},
	})
	require.NoError(t, err)

	assert.True(t, calc.NetPay.Equal(d(50000)))
	assert.NotEmpty(t, calc.Breakdown.Additions)
	assert.NotEmpty(t, calc.Breakdown.Deductions)
	assert.True(t, calc.Breakdown.TotalDeductions().GreaterThan(decimal.Zero))
}

func TestCalculate_NoTypeSelected(t *testing.T) {
	_, err := Calculate(country.India, CalculationInput{
		BasicSalary: d(1000),
	})
	assert.ErrorIs(t, err, ErrNoPayrollTypeSelected)
}

func TestCalculate_NegativeAmounts(t *testing.T) {
	inputs := []CalculationInput{
		{BasicSalary: d(-1), SelectedTypes: []TypeName{TypeRegular}},
		{BasicSalary: d(100), Bonus: d(-5), SelectedTypes: []TypeName{TypeBonus}},
		{BasicSalary: d(100), Commission: d(-5), SelectedTypes: []TypeName{TypeCommission}},
		{BasicSalary: d(100), OvertimeHours: d(-1), OvertimeRate: d(10), SelectedTypes: []TypeName{TypeOvertime}},
		{BasicSalary: d(100), OvertimeHours: d(1), OvertimeRate: d(-10), SelectedTypes: []TypeName{TypeOvertime}},
	}
	for _, in := range inputs {
		_, err := Calculate(country.India, in)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	}
}

func TestCalculate_UnknownCountry(t *testing.T) {
	_, err := Calculate(country.Country("Atlantis"), CalculationInput{
		BasicSalary:   d(100),
		SelectedTypes: []TypeName{TypeRegular},
	})
	assert.ErrorIs(t, err, country.ErrUnknownCountry)
}
