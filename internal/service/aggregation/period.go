package aggregation

import (
	"time"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
)

// cycleStartDay is the day of month a payroll cycle begins on. Cycles run
// from the 21st of one month through the 20th of the next, both inclusive.
const cycleStartDay = 21

// ResolvePeriod returns the payroll cycle enclosing the reference date.
// A date on or after the 21st belongs to the cycle starting that month; an
// earlier date belongs to the cycle that started the previous month. Month
// arithmetic is done through time.Date, which normalizes month 0 and month 13
// so year boundaries roll over correctly in both directions.
func ResolvePeriod(ref time.Time) payroll.Period {
	year, month := ref.Year(), ref.Month()

	startMonth := month
	if ref.Day() < cycleStartDay {
		startMonth--
	}

	start := time.Date(year, startMonth, cycleStartDay, 0, 0, 0, 0, ref.Location())
	end := time.Date(year, startMonth+1, 20, 23, 59, 59, 0, ref.Location())

	return payroll.Period{Start: start, End: end}
}
