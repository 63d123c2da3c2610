package attendance

import "context"

// AttendanceRepository defines data access for attendance rows. The backing
// store is append-only and non-transactional, so reads may observe stale
// duplicates; callers hand the raw rows to the aggregation engine, which
// deduplicates by date.
type AttendanceRepository interface {
	// Create appends a new attendance row.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a single row.
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// ListByEmployee retrieves every attendance row for one employee in
	// insertion order. No period filtering happens here; that is the
	// engine's job.
	ListByEmployee(ctx context.Context, employeeName string) ([]AttendanceRecord, error)

	// List retrieves attendance rows with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, int64, error)

	// Update replaces an existing row.
	Update(ctx context.Context, record AttendanceRecord) error

	// Delete removes a row.
	Delete(ctx context.Context, id string) error
}

// BreakRepository defines data access for break rows.
type BreakRepository interface {
	Create(ctx context.Context, record BreakRecord) (BreakRecord, error)

	// ListByEmployee retrieves every break row for one employee in
	// insertion order.
	ListByEmployee(ctx context.Context, employeeName string) ([]BreakRecord, error)

	// ListByEmployeeAndDate retrieves the break rows for one employee on
	// one calendar date.
	ListByEmployeeAndDate(ctx context.Context, employeeName string, date string) ([]BreakRecord, error)

	Delete(ctx context.Context, id string) error
}
