package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListPayPeriods(w http.ResponseWriter, r *http.Request)
	ListPayrollTypes(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// defaultListPerPage applies when a page is requested without a page size.
const defaultListPerPage = 50

func payrollIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "payrollID"), 10, 64)
	return id, err == nil && id > 0
}

func queryInt64(r *http.Request, name string) *int64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created successfully", created)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
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

	detail, err := h.payrollService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := payroll.ListQuery{
		PayPeriodID: queryInt64(r, "pay_period_id"),
		EmployeeID:  queryInt64(r, "employee_id"),
	}
	if c := r.URL.Query().Get("country"); c != "" {
		q.Country = &c
	}
	if s := r.URL.Query().Get("search"); s != "" {
		q.Search = &s
	}
	if page := queryInt64(r, "page"); page != nil {
		q.Page = int(*page)
		q.PerPage = defaultListPerPage
	}
	if perPage := queryInt64(r, "per_page"); perPage != nil {
		q.PerPage = int(*perPage)
	}

	entries, err := h.payrollService.List(r.Context(), actor, q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
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

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PayrollID = id

	updated, err := h.payrollService.Update(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", updated)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.payrollService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}

// ListPayPeriods implements PayrollHandler. Requires an employee_id so the
// periods can be filtered to that employee's country cadence.
func (h *PayrollHandlerImpl) ListPayPeriods(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := queryInt64(r, "employee_id")
	if employeeID == nil {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	periods, err := h.payrollService.ListPayPeriodsFor(r.Context(), actor, *employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// ListPayrollTypes implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPayrollTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.payrollService.ListPayrollTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}
