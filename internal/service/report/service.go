package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/report"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/jung-kurt/gofpdf"
)

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
	payrollRepo    payroll.PayrollRepository
}

func NewReportService(payrollService payroll.PayrollService, payrollRepo payroll.PayrollRepository) report.ReportService {
	return &ReportServiceImpl{
		payrollService: payrollService,
		payrollRepo:    payrollRepo,
	}
}

// recentEntries is how many latest payroll rows the dashboard shows.
const recentEntries = 5

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, actor user.Actor) (payroll.SummaryResponse, error) {
	if !user.IsManagementRole(actor.Role) {
		return payroll.SummaryResponse{}, user.ErrInsufficientPermissions
	}

	// Nil means all countries; scoped admins aggregate their own only.
	var countries []country.Country
	if own, ok := user.AllowedCountry(actor.Role); ok {
		countries = []country.Country{own}
	}

	summaries, err := s.payrollRepo.Summarize(ctx, countries)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	resp := payroll.SummaryResponse{Countries: summaries}
	for _, c := range summaries {
		resp.TotalEmployees += c.EmployeeCount
		resp.TotalPayrolls += c.PayrollCount
	}

	var scope *country.Country
	if len(countries) == 1 {
		scope = &countries[0]
	}
	recent, err := s.payrollRepo.List(ctx, payroll.ListFilter{Country: scope, Limit: recentEntries})
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	resp.Recent = make([]payroll.PayrollResponse, 0, len(recent))
	for _, e := range recent {
		resp.Recent = append(resp.Recent, payroll.NewPayrollResponse(e))
	}

	return resp, nil
}

var csvHeader = []string{
	"payroll_id", "employee_id", "employee_name", "country", "currency",
	"period_start", "period_end", "payroll_types",
	"basic_salary", "bonus", "overtime_hours", "overtime_rate", "net_pay",
}

// ExportPayrollCSV implements report.ReportService. Scope enforcement rides
// on the payroll list operation; exports are never paginated.
func (s *ReportServiceImpl) ExportPayrollCSV(ctx context.Context, actor user.Actor, countryFilter *string) ([]byte, error) {
	entries, err := s.payrollService.List(ctx, actor, payroll.ListQuery{Country: countryFilter})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		periodStart, periodEnd := "", ""
		if e.PeriodStart != nil {
			periodStart = *e.PeriodStart
		}
		if e.PeriodEnd != nil {
			periodEnd = *e.PeriodEnd
		}
		record := []string{
			fmt.Sprintf("%d", e.PayrollID),
			fmt.Sprintf("%d", e.EmployeeID),
			e.EmployeeName,
			e.CountryName,
			e.CurrencyCode,
			periodStart,
			periodEnd,
			strings.Join(e.PayrollTypes, "|"),
			e.BasicSalary.String(),
			e.Bonus.String(),
			e.OvertimeHours.String(),
			e.OvertimeRate.String(),
			e.NetPay.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// PayslipPDF implements report.ReportService.
func (s *ReportServiceImpl) PayslipPDF(ctx context.Context, actor user.Actor, payrollID int64) ([]byte, error) {
	detail, err := s.payrollService.Get(ctx, actor, payrollID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", detail.EmployeeName, detail.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Country: %s", detail.CountryName))
	pdf.Ln(7)
	if detail.PeriodStart != nil && detail.PeriodEnd != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", *detail.PeriodStart, *detail.PeriodEnd))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Amounts")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Basic salary: %s %s", detail.BasicSalary.String(), detail.CurrencyCode))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Bonus: %s %s", detail.Bonus.String(), detail.CurrencyCode))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Overtime: %s h x %s", detail.OvertimeHours.String(), detail.OvertimeRate.String()))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Net pay: %s %s", detail.NetPay.String(), detail.CurrencyCode))
	pdf.Ln(10)

	// Informational country formula view; not part of the net pay.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Statutory breakdown (informational)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range detail.Breakdown.Additions {
		pdf.Cell(0, 6, fmt.Sprintf("+ %s: %s", line.Label, line.Amount.StringFixed(2)))
		pdf.Ln(5)
	}
	for _, line := range detail.Breakdown.Deductions {
		pdf.Cell(0, 6, fmt.Sprintf("- %s: %s", line.Label, line.Amount.StringFixed(2)))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip PDF: %w", err)
	}

	return buf.Bytes(), nil
}
