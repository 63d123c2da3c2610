package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

func TestNewMonthlySummaryResponse(t *testing.T) {
	res := AggregationResult{
		EmployeeName:       "佐藤",
		PeriodStart:        "2024-03-21",
		PeriodEnd:          "2024-04-20",
		PlannedHours:       160,
		ActualHours:        120.5,
		BreakHours:         15,
		StandardHours:      168,
		ProgressPercentage: 75,
		WorkTypeCounts: map[attendance.WorkType]int{
			attendance.WorkTypeAttend:    14,
			attendance.WorkTypePaidLeave: 1,
		},
	}

	got := NewMonthlySummaryResponse(res)

	assert.Equal(t, "佐藤", got.EmployeeName)
	assert.Equal(t, "2024-03-21", got.PeriodStart)
	assert.Equal(t, "2024-04-20", got.PeriodEnd)
	assert.Equal(t, 120.5, got.ActualHours)
	assert.Equal(t, 75, got.ProgressPercentage)
	assert.Equal(t, map[string]int{"出勤": 14, "有給休暇": 1}, got.WorkTypeCounts)
}
