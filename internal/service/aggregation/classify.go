package aggregation

import (
	"time"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
)

const dateLayout = "2006-01-02"

// SelectRecords filters raw rows down to the ones that count toward hour
// totals for one employee, one record kind and one payroll cycle.
//
// A row is kept iff its date parses, falls inside the period (endpoints
// included), the employee name and record type match exactly, and a duration
// value is present. Rows that fail any of these are skipped silently.
//
// The deduplication key is the calendar date: once a date has produced an
// accepted row, later rows for the same date are discarded no matter what
// they contain. First by input order wins. The store's update pattern is
// read-all, filter, clear, append-all with no transaction around it, so
// duplicate rows for one day are an expected condition, not a corruption.
func SelectRecords(records []attendance.AttendanceRecord, employeeName string, recordType attendance.RecordType, period payroll.Period) []attendance.AttendanceRecord {
	return selectRecords(records, employeeName, recordType, period, true)
}

// CountByWorkType tallies one day per work type over the same employee,
// record-kind and period filter as SelectRecords, except that rows without a
// duration also count: the breakdown feeds display charts where a leave day
// with no hour value is still a day.
func CountByWorkType(records []attendance.AttendanceRecord, employeeName string, recordType attendance.RecordType, period payroll.Period) map[attendance.WorkType]int {
	counts := make(map[attendance.WorkType]int)
	for _, rec := range selectRecords(records, employeeName, recordType, period, false) {
		counts[rec.WorkType]++
	}
	return counts
}

func selectRecords(records []attendance.AttendanceRecord, employeeName string, recordType attendance.RecordType, period payroll.Period, requireDuration bool) []attendance.AttendanceRecord {
	selected := make([]attendance.AttendanceRecord, 0, len(records))
	seenDates := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if rec.EmployeeName != employeeName || rec.RecordType != recordType {
			continue
		}
		if requireDuration && rec.TotalWorkTime == "" {
			continue
		}

		date, err := time.ParseInLocation(dateLayout, rec.Date, period.Start.Location())
		if err != nil {
			continue
		}
		if !period.Contains(date) {
			continue
		}

		if _, dup := seenDates[rec.Date]; dup {
			continue
		}
		seenDates[rec.Date] = struct{}{}

		selected = append(selected, rec)
	}

	return selected
}

// SumMinutes accumulates the parsed durations of already-selected rows into
// a whole minute count.
func SumMinutes(records []attendance.AttendanceRecord) int {
	var total int
	for _, rec := range records {
		total += ParseDurationMinutes(rec.TotalWorkTime)
	}
	return total
}

// SumHours is SumMinutes converted at the boundary, unrounded. Planned and
// actual rows are always summed through separate calls; the two totals are
// never combined.
func SumHours(records []attendance.AttendanceRecord) float64 {
	return HoursFromMinutes(SumMinutes(records))
}
