package report

import (
	"context"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
)

type ReportService interface {
	// Summary aggregates payroll per country, scoped to the actor's
	// countries.
	Summary(ctx context.Context, actor user.Actor) (payroll.SummaryResponse, error)
	// ExportPayrollCSV renders the actor-visible payroll list as CSV.
	ExportPayrollCSV(ctx context.Context, actor user.Actor, countryFilter *string) ([]byte, error)
	// PayslipPDF renders a single payroll entry, including the country
	// formula breakdown, as a PDF payslip.
	PayslipPDF(ctx context.Context, actor user.Actor, payrollID int64) ([]byte, error)
}
