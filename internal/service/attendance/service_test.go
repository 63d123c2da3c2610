package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
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
	for i, rec := range f.records {
		if rec.ID == record.ID {
			f.records[i] = record
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type fakeBreakRepo struct {
	records []attendance.BreakRecord
}

func (f *fakeBreakRepo) Create(ctx context.Context, record attendance.BreakRecord) (attendance.BreakRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeBreakRepo) ListByEmployee(ctx context.Context, employeeName string) ([]attendance.BreakRecord, error) {
	return f.records, nil
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

func workedEntry(date, start, end, total string) attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		Date:          date,
		EmployeeName:  "佐藤",
		StartTime:     start,
		EndTime:       end,
		WorkType:      "出勤",
		RecordType:    "actual",
		TotalWorkTime: total,
	}
}

func TestCreateRecord_RejectsIdenticalRow(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeBreakRepo{})
	ctx := context.Background()

	req := workedEntry("2024-04-01", "09:00", "18:00", "8時間0分")
	_, err := svc.CreateRecord(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateRecord(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestCreateRecord_SameDateDifferentContentAllowed(t *testing.T) {
	// Duplicate dates with different times are real data; the aggregation
	// layer picks the first by insertion order.
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeBreakRepo{})
	ctx := context.Background()

	_, err := svc.CreateRecord(ctx, workedEntry("2024-04-01", "09:00", "18:00", "8時間0分"))
	require.NoError(t, err)

	_, err = svc.CreateRecord(ctx, workedEntry("2024-04-01", "10:00", "19:00", "8時間0分"))
	assert.NoError(t, err)
}

func TestCreateRecord_LeaveEntryCarriesNoTimes(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeBreakRepo{})

	_, err := svc.CreateRecord(context.Background(), attendance.CreateAttendanceRequest{
		Date:         "2024-04-02",
		EmployeeName: "佐藤",
		StartTime:    "09:00",
		WorkType:     "有給休暇",
		RecordType:   "actual",
	})
	assert.Error(t, err)
}

func TestUpdateRecord(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeBreakRepo{})
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, workedEntry("2024-04-01", "09:00", "18:00", "8時間0分"))
	require.NoError(t, err)

	newEnd := "19:00"
	newTotal := "9時間0分"
	updated, err := svc.UpdateRecord(ctx, attendance.UpdateAttendanceRequest{
		ID:            created.ID,
		EndTime:       &newEnd,
		TotalWorkTime: &newTotal,
	})
	require.NoError(t, err)
	assert.Equal(t, "19:00", updated.EndTime)
	assert.Equal(t, "9時間0分", updated.TotalWorkTime)
	assert.Equal(t, "09:00", updated.StartTime)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeBreakRepo{})
	err := svc.DeleteRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
