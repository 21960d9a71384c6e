package postgresql

import (
	"context"
	"fmt"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/reference"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
)

type referenceRepositoryImpl struct {
	db *database.DB
}

func NewReferenceRepository(db *database.DB) reference.ReferenceRepository {
	return &referenceRepositoryImpl{db: db}
}

// ListCountries implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) ListCountries(ctx context.Context) ([]reference.CountryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, cur.code
		FROM country c
		JOIN currency cur ON cur.id = c.currency_id
		ORDER BY c.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var countries []reference.CountryRow
	for rows.Next() {
		var c reference.CountryRow
		if err := rows.Scan(&c.ID, &c.Name, &c.CurrencyCode); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read countries: %w", err)
	}

	return countries, nil
}

// ListCurrencies implements reference.ReferenceRepository.
func (r *referenceRepositoryImpl) ListCurrencies(ctx context.Context) ([]reference.CurrencyRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, code FROM currency ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []reference.CurrencyRow
	for rows.Next() {
		var c reference.CurrencyRow
		if err := rows.Scan(&c.ID, &c.Code); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read currencies: %w", err)
	}

	return currencies, nil
}

// Seed implements reference.ReferenceRepository. Every statement is
// idempotent; running it on every startup is safe.
func (r *referenceRepositoryImpl) Seed(ctx context.Context, defaults reference.Defaults) error {
	q := GetQuerier(ctx, r.db)

	for _, code := range defaults.Currencies {
		if _, err := q.Exec(ctx,
			`INSERT INTO currency (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`, code,
		); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", code, err)
		}
	}

	for name, currencyCode := range defaults.Countries {
		if _, err := q.Exec(ctx, `
			INSERT INTO country (name, currency_id)
			SELECT $1, id FROM currency WHERE code = $2
			ON CONFLICT (name) DO NOTHING
		`, name, currencyCode); err != nil {
			return fmt.Errorf("failed to seed country %s: %w", name, err)
		}
	}

	for _, typeName := range defaults.PayrollTypes {
		if _, err := q.Exec(ctx,
			`INSERT INTO payroll_type (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, typeName,
		); err != nil {
			return fmt.Errorf("failed to seed payroll type %s: %w", typeName, err)
		}
	}

	for _, period := range defaults.PayPeriods {
		if _, err := q.Exec(ctx, `
			INSERT INTO pay_period (period_start, period_end)
			VALUES ($1, $2)
			ON CONFLICT (period_start, period_end) DO NOTHING
		`, period.PeriodStart, period.PeriodEnd); err != nil {
			return fmt.Errorf("failed to seed pay period: %w", err)
		}
	}

	return nil
}
