package aggregation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

func rec(d, emp string, rt attendance.RecordType, dur string) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		Date:          d,
		EmployeeName:  emp,
		WorkType:      attendance.WorkTypeAttend,
		RecordType:    rt,
		TotalWorkTime: dur,
	}
}

func TestSelectRecords_FiltersAndDeduplicates(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	records := []attendance.AttendanceRecord{
		rec("2024-03-21", "佐藤", attendance.RecordTypePlanned, "8時間0分"),
		rec("2024-03-21", "佐藤", attendance.RecordTypePlanned, "4時間0分"), // stale duplicate
		rec("2024-03-22", "佐藤", attendance.RecordTypePlanned, "8時間0分"),
		rec("2024-03-22", "鈴木", attendance.RecordTypePlanned, "8時間0分"), // other employee
		rec("2024-03-23", "佐藤", attendance.RecordTypeActual, "8時間0分"),  // other kind
		rec("2024-03-20", "佐藤", attendance.RecordTypePlanned, "8時間0分"), // before period
		rec("2024-04-21", "佐藤", attendance.RecordTypePlanned, "8時間0分"), // after period
		rec("not-a-date", "佐藤", attendance.RecordTypePlanned, "8時間0分"),
		rec("2024-03-24", "佐藤", attendance.RecordTypePlanned, ""), // no duration
	}

	got := SelectRecords(records, "佐藤", attendance.RecordTypePlanned, period)

	assert.Len(t, got, 2)
	assert.Equal(t, "2024-03-21", got[0].Date)
	assert.Equal(t, "8時間0分", got[0].TotalWorkTime, "first row by input order wins")
	assert.Equal(t, "2024-03-22", got[1].Date)
}

func TestSelectRecords_PeriodEndpointsInclusive(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	records := []attendance.AttendanceRecord{
		rec("2024-03-21", "佐藤", attendance.RecordTypeActual, "8時間0分"),
		rec("2024-04-20", "佐藤", attendance.RecordTypeActual, "8時間0分"),
	}

	got := SelectRecords(records, "佐藤", attendance.RecordTypeActual, period)
	assert.Len(t, got, 2)
}

func TestSelectRecords_EmptyAndNilInput(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	assert.Empty(t, SelectRecords(nil, "佐藤", attendance.RecordTypePlanned, period))
	assert.Empty(t, SelectRecords([]attendance.AttendanceRecord{}, "佐藤", attendance.RecordTypePlanned, period))
}

func TestSumHours_OrderIndependentForDistinctDates(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	records := []attendance.AttendanceRecord{
		rec("2024-03-21", "佐藤", attendance.RecordTypeActual, "8時間0分"),
		rec("2024-03-22", "佐藤", attendance.RecordTypeActual, "7時間30分"),
		rec("2024-03-25", "佐藤", attendance.RecordTypeActual, "6時間15分"),
		rec("2024-04-01", "佐藤", attendance.RecordTypeActual, "45分"),
	}
	want := SumHours(SelectRecords(records, "佐藤", attendance.RecordTypeActual, period))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]attendance.AttendanceRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := SumHours(SelectRecords(shuffled, "佐藤", attendance.RecordTypeActual, period))
		assert.Equal(t, want, got)
	}
}

func TestSumHours_DuplicateDateDoesNotChangeTotal(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	records := []attendance.AttendanceRecord{
		rec("2024-03-21", "佐藤", attendance.RecordTypeActual, "8時間0分"),
		rec("2024-03-22", "佐藤", attendance.RecordTypeActual, "8時間0分"),
	}
	base := SumHours(SelectRecords(records, "佐藤", attendance.RecordTypeActual, period))

	withDup := append(records, rec("2024-03-22", "佐藤", attendance.RecordTypeActual, "3時間0分"))
	got := SumHours(SelectRecords(withDup, "佐藤", attendance.RecordTypeActual, period))

	assert.Equal(t, base, got)
}

func TestCountByWorkType(t *testing.T) {
	period := ResolvePeriod(date(2024, time.April, 5))

	leave := attendance.AttendanceRecord{
		Date:         "2024-03-25",
		EmployeeName: "佐藤",
		WorkType:     attendance.WorkTypePaidLeave,
		RecordType:   attendance.RecordTypeActual,
		// no duration: still counts for the breakdown
	}
	records := []attendance.AttendanceRecord{
		rec("2024-03-21", "佐藤", attendance.RecordTypeActual, "8時間0分"),
		rec("2024-03-22", "佐藤", attendance.RecordTypeActual, "8時間0分"),
		rec("2024-03-22", "佐藤", attendance.RecordTypeActual, "8時間0分"), // duplicate date
		leave,
		rec("2024-03-26", "鈴木", attendance.RecordTypeActual, "8時間0分"),
	}

	got := CountByWorkType(records, "佐藤", attendance.RecordTypeActual, period)

	assert.Equal(t, 2, got[attendance.WorkTypeAttend])
	assert.Equal(t, 1, got[attendance.WorkTypePaidLeave])
	assert.Len(t, got, 2)
}
