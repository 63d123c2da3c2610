package payroll

import (
	"time"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

// Period is one payroll cycle: the 21st of one month through the 20th of the
// next, inclusive of both endpoints. Start carries 00:00:00 and End carries
// 23:59:59 so that inclusive comparisons hold whether or not a record
// timestamp has a time component.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period, endpoints included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// AggregationResult is the per-employee, per-period summary the engine
// produces. It is derived on every call and never persisted.
type AggregationResult struct {
	EmployeeName       string
	PeriodStart        string
	PeriodEnd          string
	PlannedHours       float64
	ActualHours        float64
	BreakHours         float64
	StandardHours      float64
	ProgressPercentage int
	WorkTypeCounts     map[attendance.WorkType]int
}

// LeavePolicy supplies the fixed durations for leave-type work categories.
// These come from configuration, never from clock times.
type LeavePolicy struct {
	PaidLeaveMinutes      int
	ScheduledLeaveMinutes int
	SpecialLeaveMinutes   int
	HalfDayMinutes        int
}

// MinutesFor returns the policy duration for a leave-type work category and
// whether the category is policy-fixed at all.
func (p LeavePolicy) MinutesFor(w attendance.WorkType) (int, bool) {
	switch w {
	case attendance.WorkTypePaidLeave:
		return p.PaidLeaveMinutes, true
	case attendance.WorkTypeScheduledLeave:
		return p.ScheduledLeaveMinutes, true
	case attendance.WorkTypeSpecialLeave:
		return p.SpecialLeaveMinutes, true
	case attendance.WorkTypeHalfDay:
		return p.HalfDayMinutes, true
	}
	return 0, false
}

// StandardHoursTable maps calendar months to their configured standard
// working hours, with a catch-all default.
type StandardHoursTable struct {
	Default float64
	ByMonth map[time.Month]float64
}

// For returns the standard hours for the payroll cycle the date belongs to.
// A date on or after the 21st uses the following month's standard, matching
// the 21st-to-20th cycle cutover.
func (t StandardHoursTable) For(date time.Time) float64 {
	month := date.Month()
	if date.Day() >= 21 {
		month = time.Month(int(month)%12 + 1)
	}
	if v, ok := t.ByMonth[month]; ok {
		return v
	}
	return t.Default
}
