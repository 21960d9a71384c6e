package postgresql

import (
	"context"
	"fmt"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/assistant"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// maxAssistantRows caps how much a generated query can pull back.
const maxAssistantRows = 200

type assistantQueryRunner struct {
	db *database.DB
}

// NewAssistantQueryRunner returns a runner that executes already-guarded
// SELECT statements inside a read-only transaction, as a second fence behind
// the keyword guard.
func NewAssistantQueryRunner(db *database.DB) assistant.QueryRunner {
	return &assistantQueryRunner{db: db}
}

func (r *assistantQueryRunner) RunReadOnly(ctx context.Context, sql string) (columns []string, results []map[string]any, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	for _, field := range rows.FieldDescriptions() {
		columns = append(columns, field.Name)
	}

	results = make([]map[string]any, 0)
	for rows.Next() {
		if len(results) >= maxAssistantRows {
			break
		}
		values, err := rows.Values()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read query row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read query rows: %w", err)
	}

	return columns, results, nil
}
