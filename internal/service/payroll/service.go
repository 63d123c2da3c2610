package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
	"github.com/kintai-cloud/kintai-backend-go/internal/service/aggregation"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	breakRepo      attendance.BreakRepository
	standardHours  payroll.StandardHoursTable
	leavePolicy    payroll.LeavePolicy
}

// NewPayrollService wires the aggregation engine to its collaborators. The
// standard-hours table and leave policy come in from configuration here, at
// the caller boundary; the engine itself never reads configuration.
func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	standardHours payroll.StandardHoursTable,
	leavePolicy payroll.LeavePolicy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		breakRepo:      breakRepo,
		standardHours:  standardHours,
		leavePolicy:    leavePolicy,
	}
}

// MonthlySummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlySummary(ctx context.Context, req payroll.MonthlySummaryRequest) (payroll.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	ref, err := time.ParseInLocation("2006-01-02", req.ReferenceDate, time.Local)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, payroll.ErrInvalidReferenceDate
	}

	period := aggregation.ResolvePeriod(ref)

	records, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeName)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	// Planned and actual are selected and summed independently; the two
	// totals are never combined.
	planned := aggregation.SelectRecords(records, req.EmployeeName, attendance.RecordTypePlanned, period)
	actual := aggregation.SelectRecords(records, req.EmployeeName, attendance.RecordTypeActual, period)
	plannedHours := aggregation.SumHours(planned)
	actualHours := aggregation.SumHours(actual)

	breaks, err := s.breakRepo.ListByEmployee(ctx, req.EmployeeName)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, fmt.Errorf("failed to list break records: %w", err)
	}
	breakMinutes := aggregation.BreakMinutes(selectBreaks(breaks, req.EmployeeName, attendance.RecordTypeActual, period))

	report := aggregation.BuildReport(plannedHours, actualHours, s.standardHours.For(ref))
	counts := aggregation.CountByWorkType(records, req.EmployeeName, attendance.RecordTypeActual, period)

	result := payroll.AggregationResult{
		EmployeeName:       req.EmployeeName,
		PeriodStart:        period.Start.Format("2006-01-02"),
		PeriodEnd:          period.End.Format("2006-01-02"),
		PlannedHours:       report.PlannedHours,
		ActualHours:        report.ActualHours,
		BreakHours:         aggregation.HoursFromMinutes(breakMinutes),
		StandardHours:      report.StandardHours,
		ProgressPercentage: report.ProgressPercentage,
		WorkTypeCounts:     counts,
	}

	return payroll.NewMonthlySummaryResponse(result), nil
}

// DayBreakdown implements payroll.PayrollService.
func (s *PayrollServiceImpl) DayBreakdown(ctx context.Context, req payroll.DayBreakdownRequest) (payroll.DayBreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DayBreakdownResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeName)
	if err != nil {
		return payroll.DayBreakdownResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	record, found := firstMatch(records, req.EmployeeName, req.Date, attendance.RecordType(req.RecordType))
	if !found {
		return payroll.DayBreakdownResponse{}, attendance.ErrRecordNotFound
	}

	// Leave-type categories bypass the break calculator: their duration is
	// policy, not clock arithmetic, and the row carries no times.
	if minutes, fixed := s.leavePolicy.MinutesFor(record.WorkType); fixed {
		return payroll.DayBreakdownResponse{
			EmployeeName: req.EmployeeName,
			Date:         req.Date,
			WorkType:     string(record.WorkType),
			NetMinutes:   minutes,
			PolicyFixed:  true,
		}, nil
	}

	dayBreaks, err := s.breakRepo.ListByEmployeeAndDate(ctx, req.EmployeeName, req.Date)
	if err != nil && !errors.Is(err, attendance.ErrBreakNotFound) {
		return payroll.DayBreakdownResponse{}, fmt.Errorf("failed to list break records: %w", err)
	}

	matching := make([]attendance.BreakRecord, 0, len(dayBreaks))
	for _, br := range dayBreaks {
		if br.RecordType == record.RecordType {
			matching = append(matching, br)
		}
	}

	breakMinutes := aggregation.BreakMinutes(matching)
	net := aggregation.NetWorkingMinutes(record.StartTime, record.EndTime, matching)

	var gross int
	if startM, okStart := aggregation.MinuteOfDay(record.StartTime); okStart {
		if endM, okEnd := aggregation.MinuteOfDay(record.EndTime); okEnd {
			gross = endM - startM
		}
	}

	return payroll.DayBreakdownResponse{
		EmployeeName: req.EmployeeName,
		Date:         req.Date,
		WorkType:     string(record.WorkType),
		GrossMinutes: gross,
		BreakMinutes: breakMinutes,
		NetMinutes:   net,
	}, nil
}

// firstMatch returns the first row for the date, employee and record kind in
// insertion order. Later rows for the same date are stale overwrite leftovers.
func firstMatch(records []attendance.AttendanceRecord, employeeName, date string, recordType attendance.RecordType) (attendance.AttendanceRecord, bool) {
	for _, rec := range records {
		if rec.EmployeeName == employeeName && rec.Date == date && rec.RecordType == recordType {
			return rec, true
		}
	}
	return attendance.AttendanceRecord{}, false
}

// selectBreaks filters break rows to one employee, record kind and period.
// Unlike attendance rows there is no deduplication: several breaks on one
// day are all real.
func selectBreaks(breaks []attendance.BreakRecord, employeeName string, recordType attendance.RecordType, period payroll.Period) []attendance.BreakRecord {
	selected := make([]attendance.BreakRecord, 0, len(breaks))
	for _, br := range breaks {
		if br.EmployeeName != employeeName || br.RecordType != recordType {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", br.Date, period.Start.Location())
		if err != nil {
			continue
		}
		if !period.Contains(day) {
			continue
		}
		selected = append(selected, br)
	}
	return selected
}
