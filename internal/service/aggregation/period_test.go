package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolvePeriod_OnOrAfterCutover(t *testing.T) {
	p := ResolvePeriod(date(2024, time.March, 21))

	assert.Equal(t, date(2024, time.March, 21), p.Start)
	assert.Equal(t, time.Date(2024, time.April, 20, 23, 59, 59, 0, time.Local), p.End)
}

func TestResolvePeriod_BeforeCutover(t *testing.T) {
	p := ResolvePeriod(date(2024, time.April, 5))

	assert.Equal(t, date(2024, time.March, 21), p.Start)
	assert.Equal(t, time.Date(2024, time.April, 20, 23, 59, 59, 0, time.Local), p.End)
}

func TestResolvePeriod_YearRolloverBackward(t *testing.T) {
	// 2024-01-15 sits in the cycle that started 2023-12-21.
	p := ResolvePeriod(date(2024, time.January, 15))

	assert.Equal(t, date(2023, time.December, 21), p.Start)
	assert.Equal(t, time.Date(2024, time.January, 20, 23, 59, 59, 0, time.Local), p.End)
}

func TestResolvePeriod_YearRolloverForward(t *testing.T) {
	p := ResolvePeriod(date(2023, time.December, 25))

	assert.Equal(t, date(2023, time.December, 21), p.Start)
	assert.Equal(t, time.Date(2024, time.January, 20, 23, 59, 59, 0, time.Local), p.End)
}

func TestResolvePeriod_AdjacentCycles(t *testing.T) {
	// The 20th and the 21st of the same month resolve to disjoint,
	// adjacent cycles.
	before := ResolvePeriod(date(2024, time.June, 20))
	after := ResolvePeriod(date(2024, time.June, 21))

	assert.Equal(t, 20, before.End.Day())
	assert.Equal(t, time.June, before.End.Month())
	assert.Equal(t, 21, after.Start.Day())
	assert.Equal(t, time.June, after.Start.Month())
	assert.True(t, before.End.Before(after.Start))
	assert.Equal(t, time.Second, after.Start.Sub(before.End))
}

func TestResolvePeriod_BoundaryDaysAlwaysHold(t *testing.T) {
	ref := date(2023, time.January, 1)
	for i := 0; i < 730; i++ {
		p := ResolvePeriod(ref)
		assert.Equal(t, 21, p.Start.Day(), "start day for ref %s", ref)
		assert.Equal(t, 20, p.End.Day(), "end day for ref %s", ref)
		assert.True(t, p.Start.Before(p.End), "ordering for ref %s", ref)
		assert.True(t, p.Contains(ref), "ref %s must fall in its own cycle", ref)
		ref = ref.AddDate(0, 0, 1)
	}
}
