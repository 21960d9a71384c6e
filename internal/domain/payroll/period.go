package payroll

import "github.com/globepay-hr/payroll-backend-go/internal/domain/country"

// MatchesCadence reports whether a pay period's span fits the country's
// expected cadence (USA bi-weekly, India/France monthly). Periods outside
// the range are filtered out of the selectable set, not rejected at submit.
func MatchesCadence(c country.Country, p PayPeriod) bool {
	rules, err := country.RulesFor(c)
	if err != nil {
		return false
	}
	days := p.Days()
	return days >= rules.PeriodMinDays && days <= rules.PeriodMaxDays
}

// FilterPeriodsByCountry returns the pay periods that match the country's
// cadence, preserving order.
func FilterPeriodsByCountry(c country.Country, periods []PayPeriod) []PayPeriod {
	filtered := make([]PayPeriod, 0, len(periods))
	for _, p := range periods {
		if MatchesCadence(c, p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
