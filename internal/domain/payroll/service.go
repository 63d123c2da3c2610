package payroll

import "context"

// PayrollService derives per-employee, per-cycle working-hour summaries from
// raw attendance and break rows. Every operation is a pure function of the
// rows it reads: no state is kept between calls.
type PayrollService interface {
	// MonthlySummary aggregates one employee's planned and actual hours,
	// break hours, progress and work-type breakdown for the payroll cycle
	// enclosing the reference date.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// DayBreakdown computes net working minutes for a single day: clock
	// span minus recorded breaks, or the policy-fixed duration for
	// leave-type entries.
	DayBreakdown(ctx context.Context, req DayBreakdownRequest) (DayBreakdownResponse, error)
}
