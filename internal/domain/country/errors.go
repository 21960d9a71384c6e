package country

import "errors"

var (
	ErrUnknownCountry = errors.New("unknown country")
)
