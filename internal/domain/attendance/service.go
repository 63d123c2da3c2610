package attendance

import "context"

// AttendanceService defines business logic for attendance and break rows.
type AttendanceService interface {
	// CreateRecord appends a new planned or actual entry.
	CreateRecord(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// GetRecord retrieves a single entry by ID.
	GetRecord(ctx context.Context, id string) (AttendanceResponse, error)

	// ListRecords retrieves entries with filters and pagination.
	ListRecords(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateRecord fixes wrong data on an existing entry.
	UpdateRecord(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteRecord removes an entry.
	DeleteRecord(ctx context.Context, id string) error

	// CreateBreak appends a break interval for one day.
	CreateBreak(ctx context.Context, req CreateBreakRequest) (BreakResponse, error)

	// ListBreaks retrieves the break intervals for one employee on one day.
	ListBreaks(ctx context.Context, employeeName string, date string) ([]BreakResponse, error)

	// DeleteBreak removes a break interval.
	DeleteBreak(ctx context.Context, id string) error
}
