package attendance

import "time"

// RecordType distinguishes forward-looking schedule entries from
// retrospective attendance entries.
type RecordType string

const (
	RecordTypePlanned RecordType = "planned"
	RecordTypeActual  RecordType = "actual"
)

// WorkType is the work classification carried on each record. Values are the
// labels the backing store uses verbatim, so rows round-trip without a
// translation table.
type WorkType string

const (
	WorkTypeAttend         WorkType = "出勤"
	WorkTypeRemote         WorkType = "リモート"
	WorkTypeHalfDay        WorkType = "半休"
	WorkTypeLate           WorkType = "遅刻"
	WorkTypeEarlyLeave     WorkType = "早退"
	WorkTypeScheduledLeave WorkType = "公休"
	WorkTypePaidLeave      WorkType = "有給休暇"
	WorkTypeSpecialLeave   WorkType = "休暇"
	WorkTypeSpecialWorkday WorkType = "特別出勤"
	WorkTypeTransfer       WorkType = "振替"
)

// IsLeaveType reports whether the work type carries a policy-fixed duration
// instead of one derived from clock times. Such rows legitimately have empty
// start/end fields.
func (w WorkType) IsLeaveType() bool {
	switch w {
	case WorkTypeScheduledLeave, WorkTypePaidLeave, WorkTypeSpecialLeave, WorkTypeHalfDay:
		return true
	}
	return false
}

// AttendanceRecord is one row of the backing store: either a planned or an
// actual work entry for one employee on one calendar date.
//
// Date, StartTime and EndTime stay as store-shaped strings ("2006-01-02",
// "15:04") on purpose: the store is weakly typed and may hold malformed or
// stale rows, so parsing and validation happen in the aggregation engine,
// which skips rows it cannot read. TotalWorkTime is authoritative for hour
// totals when present.
type AttendanceRecord struct {
	ID            string
	Date          string
	EmployeeName  string
	StartTime     string
	EndTime       string
	WorkType      WorkType
	RecordType    RecordType
	TotalWorkTime string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BreakRecord is one break interval on one day. Multiple per day are valid
// and all count toward break totals.
type BreakRecord struct {
	ID           string
	Date         string
	EmployeeName string
	BreakStart   string
	BreakEnd     string
	RecordType   RecordType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
