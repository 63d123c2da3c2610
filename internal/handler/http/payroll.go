package http

import (
	"net/http"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
	"github.com/kintai-cloud/kintai-backend-go/internal/handler/http/middleware"
	"github.com/kintai-cloud/kintai-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	DayBreakdown(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// MonthlySummary reports one employee's totals for the payroll cycle that
// contains the reference date.
func (h *payrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.MonthlySummaryRequest{
		EmployeeName:  q.Get("employee_name"),
		ReferenceDate: q.Get("reference_date"),
	}
	if req.EmployeeName == "" {
		if name, ok := middleware.EmployeeNameFromClaims(r); ok {
			req.EmployeeName = name
		}
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DayBreakdown reports the gross, break and net minutes for a single day.
func (h *payrollHandlerImpl) DayBreakdown(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.DayBreakdownRequest{
		EmployeeName: q.Get("employee_name"),
		Date:         q.Get("date"),
		RecordType:   q.Get("record_type"),
	}
	if req.EmployeeName == "" {
		if name, ok := middleware.EmployeeNameFromClaims(r); ok {
			req.EmployeeName = name
		}
	}

	result, err := h.payrollService.DayBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
