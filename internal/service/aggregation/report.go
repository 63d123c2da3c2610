package aggregation

import "math"

// Report is the progress slice of an aggregation result: how far actual
// hours have come against the plan, alongside the configured standard for
// the cycle.
type Report struct {
	PlannedHours       float64
	ActualHours        float64
	StandardHours      float64
	ProgressPercentage int
}

// BuildReport derives the clamped progress percentage from independently
// computed planned and actual totals. Zero or negative planned hours report
// zero progress rather than dividing by zero, and the clamp also zeroes the
// percentage produced by negative inputs. Standard hours are passed through
// for display.
func BuildReport(plannedHours, actualHours, standardHours float64) Report {
	progress := 0
	if plannedHours > 0 {
		progress = int(math.Round(actualHours / plannedHours * 100))
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return Report{
		PlannedHours:       plannedHours,
		ActualHours:        actualHours,
		StandardHours:      standardHours,
		ProgressPercentage: progress,
	}
}
