package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/employee"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/globepay-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db database.TxBeginner
	employee.EmployeeRepository
}

func NewEmployeeService(db database.TxBeginner, employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
	}
}

// resolveScope returns the country filter the actor is allowed to list with.
// Scoped admins are pinned to their own country; asking for another one is a
// cross-country error, not an empty result.
func resolveScope(actor user.Actor, requested *string) (*country.Country, error) {
	if !user.IsManagementRole(actor.Role) {
		return nil, user.ErrInsufficientPermissions
	}

	var requestedCountry *country.Country
	if requested != nil && *requested != "" {
		c, err := country.Parse(*requested)
		if err != nil {
			return nil, err
		}
		requestedCountry = &c
	}

	if own, ok := user.AllowedCountry(actor.Role); ok {
		if requestedCountry != nil && *requestedCountry != own {
			return nil, user.ErrCrossCountryAccess
		}
		return &own, nil
	}

	return requestedCountry, nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, actor user.Actor, req employee.CreateEmployeeRequest) (employee.EmployeeDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	c, err := country.Parse(req.Country)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if !user.IsManagementRole(actor.Role) {
		return employee.EmployeeDetailResponse{}, user.ErrInsufficientPermissions
	}
	if !user.CanAccessCountry(actor.Role, c) {
		return employee.EmployeeDetailResponse{}, user.ErrCrossCountryAccess
	}

	newEmployee := employee.Employee{
		EmployeeID:   req.EmployeeID,
		FullName:     req.FullName,
		DateOfBirth:  parseDate(req.DateOfBirth),
		StartDate:    parseDate(req.StartDate),
		Country:      c,
		CurrencyCode: c.CurrencyCode(),
		IsActive:     true,
		CreatedBy:    &actor.UserID,
	}

	var created employee.Employee
	var profile employee.CountryProfile
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}

		if req.CountrySpecificData != nil {
			profile = req.CountrySpecificData.ToProfile(c)
			if err := s.UpsertProfile(txCtx, created.EmployeeID, profile); err != nil {
				return err
			}
		} else {
			profile = employee.CountryProfile{Country: c}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	return employee.EmployeeDetailResponse{
		EmployeeResponse:    employee.NewEmployeeResponse(created),
		CountrySpecificData: profile.ToMap(),
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, actor user.Actor, employeeID int64) (employee.EmployeeDetailResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if !user.CanAccessCountry(actor.Role, found.Country) {
		return employee.EmployeeDetailResponse{}, user.ErrCrossCountryAccess
	}

	resp := employee.EmployeeDetailResponse{
		EmployeeResponse:    employee.NewEmployeeResponse(found),
		CountrySpecificData: map[string]string{},
	}

	profile, err := s.GetProfile(ctx, employeeID, found.Country)
	if err != nil {
		if !errors.Is(err, employee.ErrProfileNotFound) {
			return employee.EmployeeDetailResponse{}, err
		}
		return resp, nil
	}
	resp.CountrySpecificData = profile.ToMap()

	return resp, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, actor user.Actor, countryFilter *string) ([]employee.EmployeeResponse, error) {
	scope, err := resolveScope(actor, countryFilter)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, actor user.Actor, req employee.UpdateEmployeeRequest) (employee.EmployeeDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if !user.CanAccessCountry(actor.Role, current.Country) {
		return employee.EmployeeDetailResponse{}, user.ErrCrossCountryAccess
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.DateOfBirth != nil {
		current.DateOfBirth = parseDate(req.DateOfBirth)
	}
	if req.StartDate != nil {
		current.StartDate = parseDate(req.StartDate)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UpdateBase(txCtx, current); err != nil {
			return err
		}
		if req.CountrySpecificData != nil {
			// Re-validate the profile fields against the stored country, not
			// a caller-supplied one.
			if errs := employee.ValidateProfileData(current.Country, req.CountrySpecificData); errs != nil {
				return errs
			}
			return s.UpsertProfile(txCtx, current.EmployeeID, req.CountrySpecificData.ToProfile(current.Country))
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	return s.Get(ctx, actor, req.EmployeeID)
}

// SetStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, actor user.Actor, employeeID int64, req employee.UpdateEmployeeStatusRequest) (employee.EmployeeResponse, error) {
	if !user.PolicyFor(actor.Role).CanManageEmployeeStatus {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}

	current, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !user.CanAccessCountry(actor.Role, current.Country) {
		return employee.EmployeeResponse{}, user.ErrCrossCountryAccess
	}

	if err := s.SetActive(ctx, employeeID, req.IsActive); err != nil {
		return employee.EmployeeResponse{}, err
	}
	current.IsActive = req.IsActive

	return employee.NewEmployeeResponse(current), nil
}

func newBulkResponse() employee.BulkUploadResponse {
	return employee.BulkUploadResponse{
		Results: []employee.BulkRowResult{},
		Errors:  []employee.BulkRowResult{},
	}
}

func recordBulkRow(resp *employee.BulkUploadResponse, row int, employeeID int64, err error) {
	if err != nil {
		resp.Failed++
		resp.Errors = append(resp.Errors, employee.BulkRowResult{
			Row:        row,
			EmployeeID: employeeID,
			Error:      err.Error(),
		})
		return
	}
	resp.Successful++
	resp.Results = append(resp.Results, employee.BulkRowResult{
		Row:        row,
		EmployeeID: employeeID,
		Status:     "created",
	})
}

func finishBulkResponse(resp *employee.BulkUploadResponse) {
	resp.Message = fmt.Sprintf("%d employees created, %d failed", resp.Successful, resp.Failed)
}

// BulkUpload implements employee.EmployeeService. Rows run independently; a
// bad row reports its error and the rest proceed.
func (s *EmployeeServiceImpl) BulkUpload(ctx context.Context, actor user.Actor, req employee.BulkUploadRequest) (employee.BulkUploadResponse, error) {
	resp := newBulkResponse()

	for i, rowReq := range req.Employees {
		_, err := s.Create(ctx, actor, rowReq)
		recordBulkRow(&resp, i+1, rowReq.EmployeeID, err)
	}

	finishBulkResponse(&resp)
	return resp, nil
}

// csvColumns is the expected header of an employee import file. Country
// profile fields follow the base columns and are picked per row country.
var csvColumns = []string{"employee_id", "full_name", "date_of_birth", "start_date", "country"}

// ImportCSV implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ImportCSV(ctx context.Context, actor user.Actor, r io.Reader) (employee.BulkUploadResponse, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return employee.BulkUploadResponse{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range csvColumns {
		if _, ok := index[required]; !ok {
			return employee.BulkUploadResponse{}, fmt.Errorf("missing CSV column %q", required)
		}
	}

	field := func(record []string, name string) *string {
		i, ok := index[name]
		if !ok || i >= len(record) || record[i] == "" {
			return nil
		}
		v := record[i]
		return &v
	}

	resp := newBulkResponse()
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return employee.BulkUploadResponse{}, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rawID := record[index["employee_id"]]
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			recordBulkRow(&resp, row, 0, fmt.Errorf("employee_id %q is not a valid number", rawID))
			continue
		}

		rowReq := employee.CreateEmployeeRequest{
			EmployeeID:  id,
			FullName:    record[index["full_name"]],
			DateOfBirth: field(record, "date_of_birth"),
			StartDate:   field(record, "start_date"),
			Country:     record[index["country"]],
		}
		profile := employee.CountryProfileData{
			AadhaarNumber:        field(record, "aadhar_number"),
			PAN:                  field(record, "pan"),
			BankAccount:          field(record, "bank_account"),
			IFSC:                 field(record, "ifsc"),
			SocialSecurityNumber: field(record, "numero_securite_sociale"),
			BankIBAN:             field(record, "bank_iban"),
			DepartmentCode:       field(record, "department_code"),
			SSN:                  field(record, "ssn"),
			RoutingNumber:        field(record, "routing_number"),
		}
		rowReq.CountrySpecificData = &profile

		_, err = s.Create(ctx, actor, rowReq)
		recordBulkRow(&resp, row, id, err)
	}

	finishBulkResponse(&resp)
	return resp, nil
}
