package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

func brk(start, end string) attendance.BreakRecord {
	return attendance.BreakRecord{BreakStart: start, BreakEnd: end}
}

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"9:30", 570, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"", 0, false},
		{"noon", 0, false},
		{"12", 0, false},
	}
	for _, c := range cases {
		got, ok := MinuteOfDay(c.input)
		assert.Equal(t, c.ok, ok, "ok for %q", c.input)
		assert.Equal(t, c.want, got, "minutes for %q", c.input)
	}
}

func TestNetWorkingMinutes_StandardDay(t *testing.T) {
	// 09:00-18:00 with a one hour lunch: 540 - 60 = 480.
	net := NetWorkingMinutes("09:00", "18:00", []attendance.BreakRecord{brk("12:00", "13:00")})
	assert.Equal(t, 480, net)
}

func TestNetWorkingMinutes_MultipleBreaksAllSummed(t *testing.T) {
	breaks := []attendance.BreakRecord{
		brk("12:00", "12:45"),
		brk("15:00", "15:15"),
	}
	net := NetWorkingMinutes("09:00", "18:00", breaks)
	assert.Equal(t, 480, net)
}

func TestBreakMinutes_OvernightBreakWraps(t *testing.T) {
	// 23:30-00:30 spans midnight: (1440-1410) + 30 = 60.
	got := BreakMinutes([]attendance.BreakRecord{brk("23:30", "00:30")})
	assert.Equal(t, 60, got)
}

func TestNetWorkingMinutes_GrossSpanNeverWraps(t *testing.T) {
	// End before start passes through negative; only break intervals get
	// the midnight treatment.
	net := NetWorkingMinutes("18:00", "09:00", nil)
	assert.Equal(t, -540, net)
}

func TestNetWorkingMinutes_BreaksExceedShift(t *testing.T) {
	net := NetWorkingMinutes("09:00", "10:00", []attendance.BreakRecord{brk("09:00", "11:00")})
	assert.Equal(t, -60, net)
}

func TestNetWorkingMinutes_UnreadableClockTimes(t *testing.T) {
	assert.Equal(t, 0, NetWorkingMinutes("", "18:00", nil))
	assert.Equal(t, 0, NetWorkingMinutes("09:00", "late", nil))
}

func TestBreakMinutes_SkipsUnreadableIntervals(t *testing.T) {
	breaks := []attendance.BreakRecord{
		brk("12:00", "13:00"),
		brk("??", "13:00"),
		brk("14:00", ""),
	}
	assert.Equal(t, 60, BreakMinutes(breaks))
}
