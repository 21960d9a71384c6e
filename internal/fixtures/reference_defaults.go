package fixtures

import (
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/reference"
)

// ReferenceDefaults returns the reference rows seeded at startup: the three
// supported countries with their currencies, the selectable payroll types,
// and a year of pay periods (monthly for India/France cadence, bi-weekly for
// the USA cadence) anchored to the current year.
func ReferenceDefaults() reference.Defaults {
	return reference.Defaults{
		Currencies: []string{"INR", "EUR", "USD"},
		Countries: map[string]string{
			string(country.India):  country.India.CurrencyCode(),
			string(country.France): country.France.CurrencyCode(),
			string(country.USA):    country.USA.CurrencyCode(),
		},
		PayrollTypes: []string{
			string(payroll.TypeRegular),
			string(payroll.TypeBonus),
			string(payroll.TypeCommission),
			string(payroll.TypeOvertime),
		},
		PayPeriods: defaultPayPeriods(time.Now().Year()),
	}
}

func defaultPayPeriods(year int) []reference.SeedPeriod {
	var periods []reference.SeedPeriod

	// Monthly periods, first to last day of each month
	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		periods = append(periods, reference.SeedPeriod{PeriodStart: start, PeriodEnd: end})
	}

	// Bi-weekly periods covering the year
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for start.Year() == year {
		end := start.AddDate(0, 0, 13)
		periods = append(periods, reference.SeedPeriod{PeriodStart: start, PeriodEnd: end})
		start = start.AddDate(0, 0, 14)
	}

	return periods
}
