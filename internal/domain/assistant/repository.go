package assistant

import "context"

// QueryRunner executes an already-guarded SELECT statement and returns the
// column names plus rows as generic maps.
type QueryRunner interface {
	RunReadOnly(ctx context.Context, sql string) (columns []string, rows []map[string]any, err error)
}
