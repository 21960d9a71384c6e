package reference

import (
	"context"
	"time"
)

// SeedPeriod is a pay period to ensure exists at startup.
type SeedPeriod struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Defaults is the reference data the application seeds idempotently at
// startup: supported countries with their currencies, payroll types, and an
// initial set of pay periods.
type Defaults struct {
	Currencies   []string
	Countries    map[string]string // name -> currency code
	PayrollTypes []string
	PayPeriods   []SeedPeriod
}

type ReferenceRepository interface {
	ListCountries(ctx context.Context) ([]CountryRow, error)
	ListCurrencies(ctx context.Context) ([]CurrencyRow, error)
	Seed(ctx context.Context, defaults Defaults) error
}
