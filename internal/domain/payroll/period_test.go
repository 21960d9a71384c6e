package payroll

import (
	"testing"
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/stretchr/testify/assert"
)

func period(id int64, start string, days int) PayPeriod {
	s, _ := time.Parse("2006-01-02", start)
	return PayPeriod{ID: id, PeriodStart: s, PeriodEnd: s.AddDate(0, 0, days)}
}

func TestMatchesCadence(t *testing.T) {
	biweekly := period(1, "2025-03-01", 14)
	monthly := period(2, "2025-03-01", 30)
	week := period(3, "2025-03-01", 7)

	assert.True(t, MatchesCadence(country.USA, biweekly))
	assert.False(t, MatchesCadence(country.USA, monthly))
	assert.False(t, MatchesCadence(country.USA, week))

	assert.True(t, MatchesCadence(country.India, monthly))
	assert.False(t, MatchesCadence(country.India, biweekly))

	assert.True(t, MatchesCadence(country.France, monthly))
	assert.False(t, MatchesCadence(country.France, week))

	assert.False(t, MatchesCadence(country.Country("Atlantis"), monthly))
}

func TestFilterPeriodsByCountry(t *testing.T) {
	periods := []PayPeriod{
		period(1, "2025-01-01", 14),
		period(2, "2025-01-01", 31),
		period(3, "2025-02-01", 28),
		period(4, "2025-02-01", 10),
	}

	usa := FilterPeriodsByCountry(country.USA, periods)
	assert.Len(t, usa, 2)
	assert.Equal(t, int64(1), usa[0].ID)
	assert.Equal(t, int64(4), usa[1].ID)

	india := FilterPeriodsByCountry(country.India, periods)
	assert.Len(t, india, 2)
	assert.Equal(t, int64(2), india[0].ID)
	assert.Equal(t, int64(3), india[1].ID)

	assert.Empty(t, FilterPeriodsByCountry(country.Country("nope"), periods))
}
