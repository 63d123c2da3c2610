package payroll

import (
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL SUMMARY DTOs
// ========================================

type MonthlySummaryRequest struct {
	EmployeeName  string `json:"employee_name"`
	ReferenceDate string `json:"reference_date"` // YYYY-MM-DD, any day inside the cycle
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_date",
			Message: "reference_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlySummaryResponse struct {
	EmployeeName       string         `json:"employee_name"`
	PeriodStart        string         `json:"period_start"`
	PeriodEnd          string         `json:"period_end"`
	PlannedHours       float64        `json:"planned_hours"`
	ActualHours        float64        `json:"actual_hours"`
	BreakHours         float64        `json:"break_hours"`
	StandardHours      float64        `json:"standard_hours"`
	ProgressPercentage int            `json:"progress_percentage"`
	WorkTypeCounts     map[string]int `json:"work_type_counts"`
}

// NewMonthlySummaryResponse shapes an aggregation result for transport. Work
// type keys become plain strings so the JSON carries the store labels as-is.
func NewMonthlySummaryResponse(res AggregationResult) MonthlySummaryResponse {
	workTypeCounts := make(map[string]int, len(res.WorkTypeCounts))
	for workType, n := range res.WorkTypeCounts {
		workTypeCounts[string(workType)] = n
	}

	return MonthlySummaryResponse{
		EmployeeName:       res.EmployeeName,
		PeriodStart:        res.PeriodStart,
		PeriodEnd:          res.PeriodEnd,
		PlannedHours:       res.PlannedHours,
		ActualHours:        res.ActualHours,
		BreakHours:         res.BreakHours,
		StandardHours:      res.StandardHours,
		ProgressPercentage: res.ProgressPercentage,
		WorkTypeCounts:     workTypeCounts,
	}
}

type DayBreakdownRequest struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`        // YYYY-MM-DD
	RecordType   string `json:"record_type"` // planned | actual
}

func (r *DayBreakdownRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if !validator.IsInSlice(r.RecordType, []string{"planned", "actual"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be planned or actual",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayBreakdownResponse struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	WorkType     string `json:"work_type"`
	GrossMinutes int    `json:"gross_minutes"`
	BreakMinutes int    `json:"break_minutes"`
	NetMinutes   int    `json:"net_minutes"`
	PolicyFixed  bool   `json:"policy_fixed"`
}
