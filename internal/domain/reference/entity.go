package reference

// CountryRow is a supported-country reference row joined with its currency.
type CountryRow struct {
	ID           int64
	Name         string
	CurrencyCode string
}

// CurrencyRow is a currency reference row.
type CurrencyRow struct {
	ID   int64
	Code string
}

type CountryResponse struct {
	CountryID    int64  `json:"country_id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
}

type CurrencyResponse struct {
	CurrencyID int64  `json:"currency_id"`
	Code       string `json:"code"`
}
