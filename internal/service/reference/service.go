package reference

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/reference"
	"github.com/globepay-hr/payroll-backend-go/internal/fixtures"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/globepay-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ReferenceServiceImpl struct {
	db database.TxBeginner
	reference.ReferenceRepository
}

func NewReferenceService(db database.TxBeginner, referenceRepository reference.ReferenceRepository) reference.ReferenceService {
	return &ReferenceServiceImpl{
		db:                  db,
		ReferenceRepository: referenceRepository,
	}
}

// Countries implements reference.ReferenceService.
func (s *ReferenceServiceImpl) Countries(ctx context.Context) ([]reference.CountryResponse, error) {
	countries, err := s.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]reference.CountryResponse, 0, len(countries))
	for _, c := range countries {
		responses = append(responses, reference.CountryResponse{
			CountryID:    c.ID,
			Name:         c.Name,
			CurrencyCode: c.CurrencyCode,
		})
	}
	return responses, nil
}

// Currencies implements reference.ReferenceService.
func (s *ReferenceServiceImpl) Currencies(ctx context.Context) ([]reference.CurrencyResponse, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]reference.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		responses = append(responses, reference.CurrencyResponse{
			CurrencyID: c.ID,
			Code:       c.Code,
		})
	}
	return responses, nil
}

// SeedDefaults implements reference.ReferenceService.
func (s *ReferenceServiceImpl) SeedDefaults(ctx context.Context) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.Seed(txCtx, fixtures.ReferenceDefaults())
	})
}
