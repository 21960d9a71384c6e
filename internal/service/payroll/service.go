package payroll

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/employee"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/globepay-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db database.TxBeginner
	payroll.PayrollRepository
}

func NewPayrollService(db database.TxBeginner, payrollRepository payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		PayrollRepository: payrollRepository,
	}
}

// gateMutation checks the actor against the employee who owns the payroll
// row. requireActive blocks mutations for deactivated employees; deletes
// skip it so stale records stay removable.
func (s *PayrollServiceImpl) gateMutation(ctx context.Context, actor user.Actor, employeeID int64, requireActive bool) (payroll.EmployeeOwnership, error) {
	own, err := s.GetOwnership(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeOwnership{}, err
	}
	if !user.CanAccessCountry(actor.Role, own.Country) {
		return payroll.EmployeeOwnership{}, user.ErrCrossCountryAccess
	}
	if requireActive && !own.IsActive {
		return payroll.EmployeeOwnership{}, employee.ErrEmployeeInactive
	}
	return own, nil
}

func (s *PayrollServiceImpl) detailResponse(entry payroll.PayrollEntry, calc payroll.Calculation) payroll.PayrollDetailResponse {
	return payroll.PayrollDetailResponse{
		PayrollResponse: payroll.NewPayrollResponse(entry),
		Breakdown:       calc.Breakdown,
		GrossPay:        calc.GrossPay,
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, actor user.Actor, req payroll.CreatePayrollRequest) (payroll.PayrollDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollDetailResponse{}, err
	}
	if !user.PolicyFor(actor.Role).CanCreatePayroll {
		return payroll.PayrollDetailResponse{}, user.ErrInsufficientPermissions
	}

	own, err := s.gateMutation(ctx, actor, req.EmployeeID, true)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	calc, err := payroll.Calculate(own.Country, req.CalculationInput())
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	typeIDs, err := s.ResolveTypeIDs(ctx, req.SelectedTypes())
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	entry := payroll.PayrollEntry{
		EmployeeID:           req.EmployeeID,
		PayPeriodID:          req.PayPeriodID,
		PrimaryPayrollTypeID: typeIDs[0],
		BasicSalary:          calc.BasicSalary,
		Bonus:                calc.StoredBonus,
		OvertimeHours:        req.OvertimeHours,
		OvertimeRate:         req.OvertimeRate,
		NetPay:               calc.NetPay,
	}

	// The period and duplicate checks share the insert's transaction; the
	// unique constraint on (employee_id, pay_period_id) closes any remaining
	// race at commit.
	var created payroll.PayrollEntry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.GetPayPeriod(txCtx, req.PayPeriodID); err != nil {
			return err
		}
		exists, err := s.ExistsForPeriod(txCtx, req.EmployeeID, req.PayPeriodID, 0)
		if err != nil {
			return err
		}
		if exists {
			return payroll.ErrPayrollExistsForPeriod
		}

		created, err = s.PayrollRepository.Create(txCtx, entry, typeIDs)
		return err
	})
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	return s.detailResponse(created, calc), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, actor user.Actor, payrollID int64) (payroll.PayrollDetailResponse, error) {
	entry, err := s.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}
	if entry.CountryName != nil && !user.CanAccessCountry(actor.Role, *entry.CountryName) {
		return payroll.PayrollDetailResponse{}, user.ErrCrossCountryAccess
	}

	// Recompute the display breakdown from the stored basic salary.
	calc := payroll.Calculation{GrossPay: entry.NetPay}
	if entry.CountryName != nil {
		if rules, err := country.RulesFor(*entry.CountryName); err == nil {
			calc.Breakdown = rules.Formula(entry.BasicSalary)
		}
	}

	return s.detailResponse(entry, calc), nil
}

// maxListPerPage caps how many rows a single list page may return.
const maxListPerPage = 200

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, actor user.Actor, q payroll.ListQuery) ([]payroll.PayrollResponse, error) {
	if !user.IsManagementRole(actor.Role) {
		return nil, user.ErrInsufficientPermissions
	}

	var scope *country.Country
	if q.Country != nil && *q.Country != "" {
		c, err := country.Parse(*q.Country)
		if err != nil {
			return nil, err
		}
		scope = &c
	}
	if own, ok := user.AllowedCountry(actor.Role); ok {
		if scope != nil && *scope != own {
			return nil, user.ErrCrossCountryAccess
		}
		scope = &own
	}

	filter := payroll.ListFilter{
		Country:     scope,
		PayPeriodID: q.PayPeriodID,
		EmployeeID:  q.EmployeeID,
		Search:      q.Search,
	}
	if q.PerPage > 0 {
		perPage := q.PerPage
		if perPage > maxListPerPage {
			perPage = maxListPerPage
		}
		page := q.Page
		if page < 1 {
			page = 1
		}
		filter.Limit = perPage
		filter.Offset = (page - 1) * perPage
	}

	entries, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, payroll.NewPayrollResponse(entry))
	}
	return responses, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, actor user.Actor, req payroll.UpdatePayrollRequest) (payroll.PayrollDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollDetailResponse{}, err
	}
	if !user.PolicyFor(actor.Role).CanEditPayroll {
		return payroll.PayrollDetailResponse{}, user.ErrInsufficientPermissions
	}

	current, err := s.GetByID(ctx, req.PayrollID)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	own, err := s.gateMutation(ctx, actor, current.EmployeeID, true)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	calc, err := payroll.Calculate(own.Country, req.CalculationInput())
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	typeIDs, err := s.ResolveTypeIDs(ctx, req.CalculationInput().SelectedTypes)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	entry := payroll.PayrollEntry{
		ID:                   req.PayrollID,
		EmployeeID:           current.EmployeeID,
		PayPeriodID:          req.PayPeriodID,
		PrimaryPayrollTypeID: typeIDs[0],
		BasicSalary:          calc.BasicSalary,
		Bonus:                calc.StoredBonus,
		OvertimeHours:        req.OvertimeHours,
		OvertimeRate:         req.OvertimeRate,
		NetPay:               calc.NetPay,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.GetPayPeriod(txCtx, req.PayPeriodID); err != nil {
			return err
		}
		exists, err := s.ExistsForPeriod(txCtx, current.EmployeeID, req.PayPeriodID, req.PayrollID)
		if err != nil {
			return err
		}
		if exists {
			return payroll.ErrPayrollExistsForPeriod
		}

		return s.PayrollRepository.Update(txCtx, entry, typeIDs)
	})
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	updated, err := s.GetByID(ctx, req.PayrollID)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	return s.detailResponse(updated, calc), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, actor user.Actor, payrollID int64) error {
	if !user.PolicyFor(actor.Role).CanDeletePayroll {
		return user.ErrInsufficientPermissions
	}

	current, err := s.GetByID(ctx, payrollID)
	if err != nil {
		return err
	}
	if _, err := s.gateMutation(ctx, actor, current.EmployeeID, false); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.PayrollRepository.Delete(txCtx, payrollID)
	})
}

// ListPayPeriodsFor implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayPeriodsFor(ctx context.Context, actor user.Actor, employeeID int64) ([]payroll.PayPeriodResponse, error) {
	own, err := s.GetOwnership(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !user.CanAccessCountry(actor.Role, own.Country) {
		return nil, user.ErrCrossCountryAccess
	}

	periods, err := s.ListPayPeriods(ctx)
	if err != nil {
		return nil, err
	}

	matching := payroll.FilterPeriodsByCountry(own.Country, periods)
	responses := make([]payroll.PayPeriodResponse, 0, len(matching))
	for _, p := range matching {
		responses = append(responses, payroll.PayPeriodResponse{
			PayPeriodID: p.ID,
			PeriodStart: p.PeriodStart.Format("2006-01-02"),
			PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		})
	}
	return responses, nil
}

// ListPayrollTypes implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollTypes(ctx context.Context) ([]payroll.PayrollTypeResponse, error) {
	types, err := s.PayrollRepository.ListPayrollTypes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, payroll.PayrollTypeResponse{
			PayrollTypeID: t.ID,
			Name:          t.Name,
		})
	}
	return responses, nil
}
