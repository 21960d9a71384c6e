package country

import "strings"

// Country identifies one of the supported payroll jurisdictions.
type Country string

const (
	India  Country = "India"
	France Country = "France"
	USA    Country = "USA"
)

// All lists the supported countries in reference order.
func All() []Country {
	return []Country{India, France, USA}
}

// Parse resolves a country name case-insensitively.
func Parse(name string) (Country, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "india":
		return India, nil
	case "france":
		return France, nil
	case "usa":
		return USA, nil
	}
	return "", ErrUnknownCountry
}

// IsValid reports whether c is one of the supported countries.
func (c Country) IsValid() bool {
	return c == India || c == France || c == USA
}

// CurrencyCode returns the payroll currency for the country.
func (c Country) CurrencyCode() string {
	switch c {
	case India:
		return "INR"
	case France:
		return "EUR"
	case USA:
		return "USD"
	}
	return ""
}
