package reference

import "context"

type ReferenceService interface {
	Countries(ctx context.Context) ([]CountryResponse, error)
	Currencies(ctx context.Context) ([]CurrencyResponse, error)
	// SeedDefaults idempotently writes the reference rows the application
	// expects. Called once at startup.
	SeedDefaults(ctx context.Context) error
}
