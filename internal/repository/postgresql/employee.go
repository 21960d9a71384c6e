package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/employee"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.employee_id, e.full_name, e.date_of_birth, e.start_date,
	c.name AS country_name, cur.code AS currency_code,
	e.is_active, e.created_by, e.created_at
`

const employeeJoins = `
	FROM employee e
	JOIN country c ON c.id = e.country_id
	JOIN currency cur ON cur.id = e.currency_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.FullName,
		&e.DateOfBirth,
		&e.StartDate,
		&e.Country,
		&e.CurrencyCode,
		&e.IsActive,
		&e.CreatedBy,
		&e.CreatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee (employee_id, full_name, date_of_birth, start_date, country_id, currency_id, is_active, created_by)
		SELECT $1, $2, $3, $4, c.id, cur.id, $7, $8
		FROM country c, currency cur
		WHERE c.name = $5 AND cur.code = $6
		RETURNING employee_id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID,
		newEmployee.FullName,
		newEmployee.DateOfBirth,
		newEmployee.StartDate,
		string(newEmployee.Country),
		newEmployee.CurrencyCode,
		newEmployee.IsActive,
		newEmployee.CreatedBy,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "employee_pkey") {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		// No country/currency match means the insert-select produced no row
		if err == pgx.ErrNoRows {
			return employee.Employee{}, country.ErrUnknownCountry
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.employee_id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository. The country filter binds as a
// parameter; it never reaches the statement text.
func (r *employeeRepositoryImpl) List(ctx context.Context, countryFilter *country.Country) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE ($1::text IS NULL OR c.name = $1)
		ORDER BY e.created_at DESC, e.employee_id`

	var filter *string
	if countryFilter != nil {
		s := string(*countryFilter)
		filter = &s
	}

	rows, err := q.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// UpdateBase implements employee.EmployeeRepository. Country and currency
// are immutable after creation; only base profile fields change here.
func (r *employeeRepositoryImpl) UpdateBase(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee
		SET full_name = $1, date_of_birth = $2, start_date = $3
		WHERE employee_id = $4
	`

	tag, err := q.Exec(ctx, query, e.FullName, e.DateOfBirth, e.StartDate, e.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, employeeID int64, isActive bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employee SET is_active = $1 WHERE employee_id = $2`, isActive, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetProfile(ctx context.Context, employeeID int64, c country.Country) (employee.CountryProfile, error) {
	q := GetQuerier(ctx, r.db)

	profile := employee.CountryProfile{Country: c}

	var err error
	switch c {
	case country.India:
		var p employee.IndiaProfile
		err = q.QueryRow(ctx,
			`SELECT aadhar_number, pan, bank_account, ifsc FROM employee_india WHERE employee_id = $1`,
			employeeID,
		).Scan(&p.AadhaarNumber, &p.PAN, &p.BankAccount, &p.IFSC)
		profile.India = &p
	case country.France:
		var p employee.FranceProfile
		err = q.QueryRow(ctx,
			`SELECT numero_securite_sociale, bank_iban, department_code FROM employee_france WHERE employee_id = $1`,
			employeeID,
		).Scan(&p.SocialSecurityNumber, &p.BankIBAN, &p.DepartmentCode)
		profile.France = &p
	case country.USA:
		var p employee.USAProfile
		err = q.QueryRow(ctx,
			`SELECT ssn, bank_account, routing_number FROM employee_usa WHERE employee_id = $1`,
			employeeID,
		).Scan(&p.SSN, &p.BankAccount, &p.RoutingNumber)
		profile.USA = &p
	default:
		return employee.CountryProfile{}, country.ErrUnknownCountry
	}

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.CountryProfile{}, employee.ErrProfileNotFound
		}
		return employee.CountryProfile{}, fmt.Errorf("failed to get country profile: %w", err)
	}

	return profile, nil
}

// UpsertProfile implements employee.EmployeeRepository. One profile row per
// employee; a second write replaces the first.
func (r *employeeRepositoryImpl) UpsertProfile(ctx context.Context, employeeID int64, profile employee.CountryProfile) error {
	if !profile.Matches() {
		return employee.ErrProfileCountryMismatch
	}

	q := GetQuerier(ctx, r.db)

	var err error
	switch profile.Country {
	case country.India:
		_, err = q.Exec(ctx, `
			INSERT INTO employee_india (employee_id, aadhar_number, pan, bank_account, ifsc)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id) DO UPDATE SET
				aadhar_number = EXCLUDED.aadhar_number,
				pan = EXCLUDED.pan,
				bank_account = EXCLUDED.bank_account,
				ifsc = EXCLUDED.ifsc
		`, employeeID, profile.India.AadhaarNumber, profile.India.PAN, profile.India.BankAccount, profile.India.IFSC)
	case country.France:
		_, err = q.Exec(ctx, `
			INSERT INTO employee_france (employee_id, numero_securite_sociale, bank_iban, department_code)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id) DO UPDATE SET
				numero_securite_sociale = EXCLUDED.numero_securite_sociale,
				bank_iban = EXCLUDED.bank_iban,
				department_code = EXCLUDED.department_code
		`, employeeID, profile.France.SocialSecurityNumber, profile.France.BankIBAN, profile.France.DepartmentCode)
	case country.USA:
		_, err = q.Exec(ctx, `
			INSERT INTO employee_usa (employee_id, ssn, bank_account, routing_number)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id) DO UPDATE SET
				ssn = EXCLUDED.ssn,
				bank_account = EXCLUDED.bank_account,
				routing_number = EXCLUDED.routing_number
		`, employeeID, profile.USA.SSN, profile.USA.BankAccount, profile.USA.RoutingNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert country profile: %w", err)
	}

	return nil
}
