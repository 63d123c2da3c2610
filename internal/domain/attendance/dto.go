package attendance

import (
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

var recordTypes = []string{string(RecordTypePlanned), string(RecordTypeActual)}

var workTypes = []string{
	string(WorkTypeAttend),
	string(WorkTypeRemote),
	string(WorkTypeHalfDay),
	string(WorkTypeLate),
	string(WorkTypeEarlyLeave),
	string(WorkTypeScheduledLeave),
	string(WorkTypePaidLeave),
	string(WorkTypeSpecialLeave),
	string(WorkTypeSpecialWorkday),
	string(WorkTypeTransfer),
}

type CreateAttendanceRequest struct {
	Date          string `json:"date"`
	EmployeeName  string `json:"employee_name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	WorkType      string `json:"work_type"`
	RecordType    string `json:"record_type"`
	TotalWorkTime string `json:"total_work_time"`
}

func (r *CreateAttendanceRequest) Validate() error {
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

	if !validator.IsInSlice(r.RecordType, recordTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be planned or actual",
		})
	}

	if !validator.IsInSlice(r.WorkType, workTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "unknown work_type",
		})
	}

	// Leave-type entries carry no clock times; worked entries must have both.
	if WorkType(r.WorkType).IsLeaveType() {
		if !validator.IsEmpty(r.StartTime) || !validator.IsEmpty(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "leave entries must not carry clock times",
			})
		}
	} else {
		if !validator.IsValidClockTime(r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid HH:MM time",
			})
		}
		if !validator.IsValidClockTime(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid HH:MM time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID            string  `json:"-"`
	Date          *string `json:"date,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	WorkType      *string `json:"work_type,omitempty"`
	TotalWorkTime *string `json:"total_work_time,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if r.StartTime != nil && *r.StartTime != "" && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}

	if r.EndTime != nil && *r.EndTime != "" && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if r.WorkType != nil && !validator.IsInSlice(*r.WorkType, workTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "unknown work_type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateBreakRequest struct {
	Date         string `json:"date"`
	EmployeeName string `json:"employee_name"`
	BreakStart   string `json:"break_start"`
	BreakEnd     string `json:"break_end"`
	RecordType   string `json:"record_type"`
}

func (r *CreateBreakRequest) Validate() error {
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

	if !validator.IsValidClockTime(r.BreakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be a valid HH:MM time",
		})
	}

	if !validator.IsValidClockTime(r.BreakEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end must be a valid HH:MM time",
		})
	}

	if !validator.IsInSlice(r.RecordType, recordTypes) {
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

type AttendanceResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	EmployeeName  string `json:"employee_name"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	WorkType      string `json:"work_type"`
	RecordType    string `json:"record_type"`
	TotalWorkTime string `json:"total_work_time,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type BreakResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	EmployeeName string `json:"employee_name"`
	BreakStart   string `json:"break_start"`
	BreakEnd     string `json:"break_end"`
	RecordType   string `json:"record_type"`
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeName *string `json:"employee_name,omitempty"`
	RecordType   *string `json:"record_type,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 100",
		})
	}

	if f.RecordType != nil && !validator.IsInSlice(*f.RecordType, recordTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be planned or actual",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"date", "employee_name", "created_at"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of date, employee_name, created_at",
		})
	}
	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Showing    string               `json:"showing"`
	Records    []AttendanceResponse `json:"records"`
}
