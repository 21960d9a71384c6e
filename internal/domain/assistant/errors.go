package assistant

import "errors"

var (
	ErrEmptyQuestion     = errors.New("question cannot be empty")
	ErrUnsafeSQL         = errors.New("generated SQL is not a read-only SELECT statement")
	ErrNoSQLGenerated    = errors.New("model response did not contain a SQL statement")
	ErrModelsUnavailable = errors.New("all configured models failed to respond")
)
