// Package aggregation is the payroll-period attendance aggregation engine.
// Everything in it is a pure, stateless transformation of the rows it is
// given: the package performs no I/O and is safe to call from any number of
// goroutines. Malformed rows degrade to "excluded from the total" instead of
// returning errors, because the backing store is weakly typed and its
// non-atomic update pattern can leave stale or partial rows behind.
package aggregation

import (
	"math"
	"regexp"
	"strconv"
)

var (
	hoursSegmentRegex   = regexp.MustCompile(`(\d+)時間`)
	minutesSegmentRegex = regexp.MustCompile(`(\d+)分`)
	bareNumberRegex     = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseDurationMinutes converts a duration string such as "8時間30分" into a
// whole minute count. Either segment may be absent. When neither segment is
// present, the first number in the string is read as an hour count (the store
// holds plain "7.5" style values in older rows). Empty or unreadable input
// yields 0.
//
// Totals accumulate in whole minutes so repeated additions cannot drift;
// conversion back to hours happens only at the boundary.
func ParseDurationMinutes(text string) int {
	if text == "" {
		return 0
	}

	hoursMatch := hoursSegmentRegex.FindStringSubmatch(text)
	minutesMatch := minutesSegmentRegex.FindStringSubmatch(text)

	if hoursMatch == nil && minutesMatch == nil {
		numberMatch := bareNumberRegex.FindString(text)
		if numberMatch == "" {
			return 0
		}
		hours, err := strconv.ParseFloat(numberMatch, 64)
		if err != nil {
			return 0
		}
		return int(math.Round(hours * 60))
	}

	var minutes int
	if hoursMatch != nil {
		h, err := strconv.Atoi(hoursMatch[1])
		if err != nil {
			return 0
		}
		minutes += h * 60
	}
	if minutesMatch != nil {
		m, err := strconv.Atoi(minutesMatch[1])
		if err != nil {
			return 0
		}
		minutes += m
	}
	return minutes
}

// HoursFromMinutes converts an accumulated minute count back to hours without
// rounding, so callers decide their own display precision.
func HoursFromMinutes(minutes int) float64 {
	return float64(minutes) / 60
}
