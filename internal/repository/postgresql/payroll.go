package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/employee"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.pay_period_id, p.payroll_type_id,
	p.basic_salary, p.bonus, p.overtime_hours, p.overtime_rate, p.net_pay, p.created_at,
	e.full_name, c.name AS country_name, cur.code AS currency_code,
	pp.period_start, pp.period_end,
	COALESCE(types.names, '{}') AS type_names
`

const payrollJoins = `
	FROM payroll p
	JOIN employee e ON e.employee_id = p.employee_id
	JOIN country c ON c.id = e.country_id
	JOIN currency cur ON cur.id = e.currency_id
	JOIN pay_period pp ON pp.id = p.pay_period_id
	LEFT JOIN LATERAL (
		SELECT array_agg(pt.name ORDER BY pt.id) AS names
		FROM payroll_payroll_type ppt
		JOIN payroll_type pt ON pt.id = ppt.payroll_type_id
		WHERE ppt.payroll_id = p.id
	) types ON true
`

func scanPayroll(row pgx.Row) (payroll.PayrollEntry, error) {
	var e payroll.PayrollEntry
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.PayPeriodID,
		&e.PrimaryPayrollTypeID,
		&e.BasicSalary,
		&e.Bonus,
		&e.OvertimeHours,
		&e.OvertimeRate,
		&e.NetPay,
		&e.CreatedAt,
		&e.EmployeeName,
		&e.CountryName,
		&e.CurrencyCode,
		&e.PeriodStart,
		&e.PeriodEnd,
		&e.TypeNames,
	)
	return e, err
}

// Create implements payroll.PayrollRepository. The type links are written in
// the same call; callers wrap it in a transaction.
func (r *payrollRepositoryImpl) Create(ctx context.Context, entry payroll.PayrollEntry, typeIDs []int64) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (employee_id, pay_period_id, payroll_type_id, basic_salary, bonus, overtime_hours, overtime_rate, net_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.PayPeriodID,
		entry.PrimaryPayrollTypeID,
		entry.BasicSalary,
		entry.Bonus,
		entry.OvertimeHours,
		entry.OvertimeRate,
		entry.NetPay,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollEntry{}, payroll.ErrPayrollExistsForPeriod
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	if err := r.replaceTypeLinks(ctx, id, typeIDs); err != nil {
		return payroll.PayrollEntry{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, payrollID int64) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE p.id = $1`

	entry, err := scanPayroll(q.QueryRow(ctx, query, payrollID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return entry, nil
}

// List implements payroll.PayrollRepository. Every filter binds as a
// parameter; none of them reaches the statement text.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoins + `
		WHERE ($1::text IS NULL OR c.name = $1)
		  AND ($2::bigint IS NULL OR p.pay_period_id = $2)
		  AND ($3::bigint IS NULL OR p.employee_id = $3)
		  AND ($4::text IS NULL OR e.full_name ILIKE '%' || $4 || '%')
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT NULLIF($5::int, 0) OFFSET $6`

	var countryName *string
	if filter.Country != nil {
		s := string(*filter.Country)
		countryName = &s
	}

	rows, err := q.Query(ctx, query, countryName, filter.PayPeriodID, filter.EmployeeID,
		filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		entry, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll rows: %w", err)
	}

	return entries, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, entry payroll.PayrollEntry, typeIDs []int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET pay_period_id = $1, payroll_type_id = $2, basic_salary = $3, bonus = $4,
			overtime_hours = $5, overtime_rate = $6, net_pay = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		entry.PayPeriodID,
		entry.PrimaryPayrollTypeID,
		entry.BasicSalary,
		entry.Bonus,
		entry.OvertimeHours,
		entry.OvertimeRate,
		entry.NetPay,
		entry.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.ErrPayrollExistsForPeriod
		}
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return r.replaceTypeLinks(ctx, entry.ID, typeIDs)
}

// Delete implements payroll.PayrollRepository. Type links cascade.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, payrollID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll WHERE id = $1`, payrollID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID, payPeriodID, excludePayrollID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payroll
			WHERE employee_id = $1 AND pay_period_id = $2 AND id <> $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, payPeriodID, excludePayrollID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll existence: %w", err)
	}

	return exists, nil
}

// GetOwnership implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetOwnership(ctx context.Context, employeeID int64) (payroll.EmployeeOwnership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.full_name, c.name, e.is_active
		FROM employee e
		JOIN country c ON c.id = e.country_id
		WHERE e.employee_id = $1
	`

	var own payroll.EmployeeOwnership
	err := q.QueryRow(ctx, query, employeeID).Scan(&own.EmployeeID, &own.FullName, &own.Country, &own.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.EmployeeOwnership{}, employee.ErrEmployeeNotFound
		}
		return payroll.EmployeeOwnership{}, fmt.Errorf("failed to get employee ownership: %w", err)
	}

	return own, nil
}

// ListPayPeriods implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayPeriods(ctx context.Context) ([]payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, period_start, period_end FROM pay_period ORDER BY period_start DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		var p payroll.PayPeriod
		if err := rows.Scan(&p.ID, &p.PeriodStart, &p.PeriodEnd); err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pay periods: %w", err)
	}

	return periods, nil
}

// GetPayPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayPeriod(ctx context.Context, payPeriodID int64) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayPeriod
	err := q.QueryRow(ctx, `SELECT id, period_start, period_end FROM pay_period WHERE id = $1`, payPeriodID).
		Scan(&p.ID, &p.PeriodStart, &p.PeriodEnd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return p, nil
}

// ListPayrollTypes implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayrollTypes(ctx context.Context) ([]payroll.PayrollType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM payroll_type ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll types: %w", err)
	}
	defer rows.Close()

	var types []payroll.PayrollType
	for rows.Next() {
		var t payroll.PayrollType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan payroll type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll types: %w", err)
	}

	return types, nil
}

// ResolveTypeIDs implements payroll.PayrollRepository. Order follows the
// input names; an unknown name fails the whole lookup.
func (r *payrollRepositoryImpl) ResolveTypeIDs(ctx context.Context, names []payroll.TypeName) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		err := q.QueryRow(ctx, `SELECT id FROM payroll_type WHERE name = $1`, string(name)).Scan(&id)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, payroll.ErrPayrollTypeNotFound
			}
			return nil, fmt.Errorf("failed to resolve payroll type: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Summarize implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Summarize(ctx context.Context, countries []country.Country) ([]payroll.CountrySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.name, cur.code,
			   COUNT(DISTINCT e.employee_id),
			   COUNT(p.id),
			   COALESCE(SUM(p.net_pay), 0),
			   COALESCE(AVG(p.net_pay), 0)
		FROM country c
		JOIN currency cur ON cur.id = c.currency_id
		LEFT JOIN employee e ON e.country_id = c.id
		LEFT JOIN payroll p ON p.employee_id = e.employee_id
		WHERE ($1::text[] IS NULL OR c.name = ANY($1))
		GROUP BY c.name, cur.code
		ORDER BY c.name
	`

	var names []string
	if countries != nil {
		names = make([]string, 0, len(countries))
		for _, c := range countries {
			names = append(names, string(c))
		}
	}

	rows, err := q.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payroll: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.CountrySummary
	for rows.Next() {
		var s payroll.CountrySummary
		if err := rows.Scan(&s.CountryName, &s.CurrencyCode, &s.EmployeeCount, &s.PayrollCount, &s.TotalNetPay, &s.AverageNetPay); err != nil {
			return nil, fmt.Errorf("failed to scan payroll summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll summaries: %w", err)
	}

	return summaries, nil
}

func (r *payrollRepositoryImpl) replaceTypeLinks(ctx context.Context, payrollID int64, typeIDs []int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_payroll_type WHERE payroll_id = $1`, payrollID); err != nil {
		return fmt.Errorf("failed to clear payroll type links: %w", err)
	}
	for _, typeID := range typeIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO payroll_payroll_type (payroll_id, payroll_type_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			payrollID, typeID,
		)
		if err != nil {
			return fmt.Errorf("failed to link payroll type: %w", err)
		}
	}

	return nil
}
