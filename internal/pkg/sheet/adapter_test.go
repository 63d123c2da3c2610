package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

func TestAttendanceFromRow(t *testing.T) {
	rec, ok := AttendanceFromRow([]string{"2024-04-01", "佐藤", "09:00", "18:00", "出勤", "実績", "8時間0分"})

	assert.True(t, ok)
	assert.Equal(t, "2024-04-01", rec.Date)
	assert.Equal(t, "佐藤", rec.EmployeeName)
	assert.Equal(t, attendance.WorkTypeAttend, rec.WorkType)
	assert.Equal(t, attendance.RecordTypeActual, rec.RecordType)
	assert.Equal(t, "8時間0分", rec.TotalWorkTime)
}

func TestAttendanceFromRow_JapaneseRecordTypeLabels(t *testing.T) {
	rec, ok := AttendanceFromRow([]string{"2024-04-01", "佐藤", "09:00", "18:00", "出勤", "予定", "8時間0分"})
	assert.True(t, ok)
	assert.Equal(t, attendance.RecordTypePlanned, rec.RecordType)
}

func TestAttendanceFromRow_MissingTotalColumn(t *testing.T) {
	// Leave rows often omit the trailing duration column entirely.
	rec, ok := AttendanceFromRow([]string{"2024-04-02", "佐藤", "", "", "有給休暇", "実績"})
	assert.True(t, ok)
	assert.Equal(t, "", rec.TotalWorkTime)
	assert.Equal(t, attendance.WorkTypePaidLeave, rec.WorkType)
}

func TestAttendanceFromRow_RejectsRowsWithoutIdentity(t *testing.T) {
	_, ok := AttendanceFromRow([]string{"", "佐藤", "09:00", "18:00", "出勤", "実績", "8時間0分"})
	assert.False(t, ok)

	_, ok = AttendanceFromRow([]string{"2024-04-01", "", "09:00", "18:00", "出勤", "実績", "8時間0分"})
	assert.False(t, ok)

	_, ok = AttendanceFromRow([]string{"2024-04-01", "佐藤"})
	assert.False(t, ok)
}

func TestAttendanceFromRow_TrimsCellWhitespace(t *testing.T) {
	rec, ok := AttendanceFromRow([]string{" 2024-04-01 ", "佐藤 ", " 09:00", "18:00 ", "出勤", "実績", " 8時間0分"})
	assert.True(t, ok)
	assert.Equal(t, "2024-04-01", rec.Date)
	assert.Equal(t, "佐藤", rec.EmployeeName)
	assert.Equal(t, "09:00", rec.StartTime)
}

func TestBreakFromRow(t *testing.T) {
	rec, ok := BreakFromRow([]string{"2024-04-01", "佐藤", "12:00", "13:00", "実績"})

	assert.True(t, ok)
	assert.Equal(t, "2024-04-01", rec.Date)
	assert.Equal(t, "12:00", rec.BreakStart)
	assert.Equal(t, "13:00", rec.BreakEnd)
	assert.Equal(t, attendance.RecordTypeActual, rec.RecordType)
}

func TestBreakFromRow_ShortRowRejected(t *testing.T) {
	_, ok := BreakFromRow([]string{"2024-04-01", "佐藤", "12:00"})
	assert.False(t, ok)
}
