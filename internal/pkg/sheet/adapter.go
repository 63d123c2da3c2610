package sheet

import (
	"strings"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

// Attendance sheet columns, in order.
const (
	colDate = iota
	colEmployeeName
	colStartTime
	colEndTime
	colWorkType
	colRecordType
	colTotalWorkTime
)

// Break sheet columns, in order.
const (
	colBreakDate = iota
	colBreakEmployeeName
	colBreakStart
	colBreakEnd
	colBreakRecordType
)

// AttendanceFromRow maps one sheet row to an attendance record. Rows missing
// the date or employee name are not records at all and are reported as not ok;
// everything else passes through untouched, malformed cells included. The
// aggregation layer decides what it can read.
func AttendanceFromRow(row []string) (attendance.AttendanceRecord, bool) {
	if len(row) <= colRecordType {
		return attendance.AttendanceRecord{}, false
	}

	rec := attendance.AttendanceRecord{
		Date:         cell(row, colDate),
		EmployeeName: cell(row, colEmployeeName),
		StartTime:    cell(row, colStartTime),
		EndTime:      cell(row, colEndTime),
		WorkType:     attendance.WorkType(cell(row, colWorkType)),
		RecordType:   recordType(cell(row, colRecordType)),
	}
	rec.TotalWorkTime = cell(row, colTotalWorkTime)

	if rec.Date == "" || rec.EmployeeName == "" {
		return attendance.AttendanceRecord{}, false
	}
	return rec, true
}

// BreakFromRow maps one sheet row to a break record.
func BreakFromRow(row []string) (attendance.BreakRecord, bool) {
	if len(row) <= colBreakRecordType {
		return attendance.BreakRecord{}, false
	}

	rec := attendance.BreakRecord{
		Date:         cell(row, colBreakDate),
		EmployeeName: cell(row, colBreakEmployeeName),
		BreakStart:   cell(row, colBreakStart),
		BreakEnd:     cell(row, colBreakEnd),
		RecordType:   recordType(cell(row, colBreakRecordType)),
	}

	if rec.Date == "" || rec.EmployeeName == "" {
		return attendance.BreakRecord{}, false
	}
	return rec, true
}

// recordType accepts both the Japanese labels the sheets use and the stored
// values. Anything unrecognized stays as written so validation can reject it.
func recordType(s string) attendance.RecordType {
	switch s {
	case "予定":
		return attendance.RecordTypePlanned
	case "実績":
		return attendance.RecordTypeActual
	default:
		return attendance.RecordType(s)
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
