package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
)

// ===== In-memory repository fakes =====

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeName string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeName == employeeName {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeBreakRepo struct {
	records []attendance.BreakRecord
}

func (f *fakeBreakRepo) Create(ctx context.Context, record attendance.BreakRecord) (attendance.BreakRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeBreakRepo) ListByEmployee(ctx context.Context, employeeName string) ([]attendance.BreakRecord, error) {
	var out []attendance.BreakRecord
	for _, rec := range f.records {
		if rec.EmployeeName == employeeName {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeBreakRepo) ListByEmployeeAndDate(ctx context.Context, employeeName string, date string) ([]attendance.BreakRecord, error) {
	var out []attendance.BreakRecord
	for _, rec := range f.records {
		if rec.EmployeeName == employeeName && rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeBreakRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestService(attRepo *fakeAttendanceRepo, brkRepo *fakeBreakRepo) payroll.PayrollService {
	return NewPayrollService(
		attRepo,
		brkRepo,
		payroll.StandardHoursTable{Default: 160},
		payroll.LeavePolicy{
			PaidLeaveMinutes:      480,
			ScheduledLeaveMinutes: 0,
			SpecialLeaveMinutes:   0,
			HalfDayMinutes:        240,
		},
	)
}

func record(date, emp string, rt attendance.RecordType, wt attendance.WorkType, start, end, total string) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		Date:          date,
		EmployeeName:  emp,
		StartTime:     start,
		EndTime:       end,
		WorkType:      wt,
		RecordType:    rt,
		TotalWorkTime: total,
	}
}

// ===== PAYROLL SERVICE TESTS =====

func TestMonthlySummary_DuplicateDateUsesFirstRow(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "X", attendance.RecordTypePlanned, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
		record("2024-03-21", "X", attendance.RecordTypePlanned, attendance.WorkTypeAttend, "09:00", "14:00", "4時間0分"),
	}}
	svc := newTestService(attRepo, &fakeBreakRepo{})

	got, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "X",
		ReferenceDate: "2024-04-05",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(8), got.PlannedHours, "second row for the same date is a stale duplicate")
	assert.Equal(t, float64(0), got.ActualHours)
}

func TestMonthlySummary_YearRolloverPeriod(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeBreakRepo{})

	got, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "X",
		ReferenceDate: "2024-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "2023-12-21", got.PeriodStart)
	assert.Equal(t, "2024-01-20", got.PeriodEnd)
}

func TestMonthlySummary_PlannedAndActualIndependent(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "佐藤", attendance.RecordTypePlanned, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
		record("2024-03-22", "佐藤", attendance.RecordTypePlanned, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
		record("2024-03-21", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeAttend, "09:00", "17:30", "7時間30分"),
	}}
	svc := newTestService(attRepo, &fakeBreakRepo{})

	got, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "佐藤",
		ReferenceDate: "2024-04-05",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(16), got.PlannedHours)
	assert.Equal(t, 7.5, got.ActualHours)
	assert.Equal(t, 47, got.ProgressPercentage) // 7.5/16 rounds to 47
	assert.Equal(t, float64(160), got.StandardHours)
}

func TestMonthlySummary_BreakHoursAndCounts(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
		record("2024-03-22", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeRemote, "09:00", "18:00", "8時間0分"),
		// Paid leave carries no duration but still shows up in the breakdown.
		record("2024-03-25", "佐藤", attendance.RecordTypeActual, attendance.WorkTypePaidLeave, "", "", ""),
	}}
	brkRepo := &fakeBreakRepo{records: []attendance.BreakRecord{
		{Date: "2024-03-21", EmployeeName: "佐藤", BreakStart: "12:00", BreakEnd: "13:00", RecordType: attendance.RecordTypeActual},
		{Date: "2024-03-22", EmployeeName: "佐藤", BreakStart: "12:00", BreakEnd: "12:30", RecordType: attendance.RecordTypeActual},
		// Planned break must not leak into the actual total.
		{Date: "2024-03-22", EmployeeName: "佐藤", BreakStart: "15:00", BreakEnd: "16:00", RecordType: attendance.RecordTypePlanned},
		// Outside the period.
		{Date: "2024-05-01", EmployeeName: "佐藤", BreakStart: "12:00", BreakEnd: "13:00", RecordType: attendance.RecordTypeActual},
	}}
	svc := newTestService(attRepo, brkRepo)

	got, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "佐藤",
		ReferenceDate: "2024-04-05",
	})

	require.NoError(t, err)
	assert.Equal(t, 1.5, got.BreakHours)
	assert.Equal(t, map[string]int{
		string(attendance.WorkTypeAttend):    1,
		string(attendance.WorkTypeRemote):    1,
		string(attendance.WorkTypePaidLeave): 1,
	}, got.WorkTypeCounts)
}

func TestMonthlySummary_ZeroPlannedReportsZeroProgress(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
	}}
	svc := newTestService(attRepo, &fakeBreakRepo{})

	got, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "佐藤",
		ReferenceDate: "2024-04-05",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(0), got.PlannedHours)
	assert.Equal(t, 0, got.ProgressPercentage)
}

func TestMonthlySummary_ValidationFailure(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeBreakRepo{})

	_, err := svc.MonthlySummary(context.Background(), payroll.MonthlySummaryRequest{
		EmployeeName:  "",
		ReferenceDate: "not-a-date",
	})

	assert.Error(t, err)
}

func TestDayBreakdown_StandardDay(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeAttend, "09:00", "18:00", "8時間0分"),
	}}
	brkRepo := &fakeBreakRepo{records: []attendance.BreakRecord{
		{Date: "2024-03-21", EmployeeName: "佐藤", BreakStart: "12:00", BreakEnd: "13:00", RecordType: attendance.RecordTypeActual},
	}}
	svc := newTestService(attRepo, brkRepo)

	got, err := svc.DayBreakdown(context.Background(), payroll.DayBreakdownRequest{
		EmployeeName: "佐藤",
		Date:         "2024-03-21",
		RecordType:   "actual",
	})

	require.NoError(t, err)
	assert.Equal(t, 540, got.GrossMinutes)
	assert.Equal(t, 60, got.BreakMinutes)
	assert.Equal(t, 480, got.NetMinutes)
	assert.False(t, got.PolicyFixed)
}

func TestDayBreakdown_OvernightBreakWraps(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-21", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeAttend, "16:00", "23:59", ""),
	}}
	brkRepo := &fakeBreakRepo{records: []attendance.BreakRecord{
		{Date: "2024-03-21", EmployeeName: "佐藤", BreakStart: "23:30", BreakEnd: "00:30", RecordType: attendance.RecordTypeActual},
	}}
	svc := newTestService(attRepo, brkRepo)

	got, err := svc.DayBreakdown(context.Background(), payroll.DayBreakdownRequest{
		EmployeeName: "佐藤",
		Date:         "2024-03-21",
		RecordType:   "actual",
	})

	require.NoError(t, err)
	assert.Equal(t, 60, got.BreakMinutes)
	assert.Equal(t, 479-60, got.NetMinutes)
}

func TestDayBreakdown_PaidLeaveUsesPolicy(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-25", "佐藤", attendance.RecordTypeActual, attendance.WorkTypePaidLeave, "", "", ""),
	}}
	svc := newTestService(attRepo, &fakeBreakRepo{})

	got, err := svc.DayBreakdown(context.Background(), payroll.DayBreakdownRequest{
		EmployeeName: "佐藤",
		Date:         "2024-03-25",
		RecordType:   "actual",
	})

	require.NoError(t, err)
	assert.True(t, got.PolicyFixed)
	assert.Equal(t, 480, got.NetMinutes)
	assert.Equal(t, 0, got.BreakMinutes)
}

func TestDayBreakdown_ScheduledLeaveIsZero(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		record("2024-03-25", "佐藤", attendance.RecordTypeActual, attendance.WorkTypeScheduledLeave, "", "", ""),
	}}
	svc := newTestService(attRepo, &fakeBreakRepo{})

	got, err := svc.DayBreakdown(context.Background(), payroll.DayBreakdownRequest{
		EmployeeName: "佐藤",
		Date:         "2024-03-25",
		RecordType:   "actual",
	})

	require.NoError(t, err)
	assert.True(t, got.PolicyFixed)
	assert.Equal(t, 0, got.NetMinutes)
}

func TestDayBreakdown_NotFound(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeBreakRepo{})

	_, err := svc.DayBreakdown(context.Background(), payroll.DayBreakdownRequest{
		EmployeeName: "佐藤",
		Date:         "2024-03-25",
		RecordType:   "actual",
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
