package aggregation

import (
	"strconv"
	"strings"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

const minutesPerDay = 24 * 60

// MinuteOfDay converts an "HH:MM" clock string to minutes since midnight.
// The bool result is false for anything unreadable.
func MinuteOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// BreakMinutes sums the supplied break intervals. An interval whose end
// minute is numerically less than its start minute is read as spanning
// midnight and contributes (1440 - start) + end. Intervals with unreadable
// times are skipped.
func BreakMinutes(breaks []attendance.BreakRecord) int {
	var total int
	for _, br := range breaks {
		start, okStart := MinuteOfDay(br.BreakStart)
		end, okEnd := MinuteOfDay(br.BreakEnd)
		if !okStart || !okEnd {
			continue
		}
		if end < start {
			total += (minutesPerDay - start) + end
		} else {
			total += end - start
		}
	}
	return total
}

// NetWorkingMinutes computes one day's net working time: the clock span minus
// all recorded breaks.
//
// The gross span is endTime - startTime with no overnight correction: a
// negative span (end before start) passes through as-is so the caller can
// surface it instead of a silently wrapped 23-hour day. Midnight wraparound
// applies only inside the break summation. The result may also go negative
// when breaks exceed the shift; that too is passed through unclamped.
//
// Leave-type work categories never reach this function; their duration is a
// fixed policy value because those rows carry no clock times.
func NetWorkingMinutes(startTime, endTime string, breaks []attendance.BreakRecord) int {
	start, okStart := MinuteOfDay(startTime)
	end, okEnd := MinuteOfDay(endTime)
	if !okStart || !okEnd {
		return 0
	}
	return (end - start) - BreakMinutes(breaks)
}
