package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/report"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	ExportPayrollCSV(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.Summary(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportPayrollCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var countryFilter *string
	if c := r.URL.Query().Get("country"); c != "" {
		countryFilter = &c
	}

	data, err := h.reportService.ExportPayrollCSV(r.Context(), actor, countryFilter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-export-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// PayslipPDF implements ReportHandler.
func (h *ReportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := payrollIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid payroll ID", nil)
		return
	}

	data, err := h.reportService.PayslipPDF(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("payslip-%d.pdf", id)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
