package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.BreakRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		BreakRepository:      breakRepo,
	}
}

// CreateRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Duplicate dates with different content are real data the aggregation
	// layer resolves; only a row identical in every field is rejected, the
	// same rule the workbook import applies.
	existing, err := a.AttendanceRepository.ListByEmployee(ctx, req.EmployeeName)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	for _, rec := range existing {
		if rec.Date == req.Date &&
			rec.StartTime == req.StartTime &&
			rec.EndTime == req.EndTime &&
			rec.WorkType == attendance.WorkType(req.WorkType) &&
			rec.RecordType == attendance.RecordType(req.RecordType) &&
			rec.TotalWorkTime == req.TotalWorkTime {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateRecord
		}
	}

	data := attendance.AttendanceRecord{
		ID:            uuid.NewString(),
		Date:          req.Date,
		EmployeeName:  req.EmployeeName,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		WorkType:      attendance.WorkType(req.WorkType),
		RecordType:    attendance.RecordType(req.RecordType),
		TotalWorkTime: req.TotalWorkTime,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return mapRecordToResponse(rec), nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Records:    responses,
	}, nil
}

// UpdateRecord implements attendance.AttendanceService.
// This allows fixing wrong data like a mistyped clock time or duration.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.Date != nil && *req.Date != "" {
		rec.Date = *req.Date
	}
	if req.StartTime != nil {
		rec.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		rec.EndTime = *req.EndTime
	}
	if req.WorkType != nil {
		rec.WorkType = attendance.WorkType(*req.WorkType)
	}
	if req.TotalWorkTime != nil {
		rec.TotalWorkTime = *req.TotalWorkTime
	}

	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}

	return mapRecordToResponse(updated), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// CreateBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateBreak(ctx context.Context, req attendance.CreateBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	data := attendance.BreakRecord{
		ID:           uuid.NewString(),
		Date:         req.Date,
		EmployeeName: req.EmployeeName,
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
		RecordType:   attendance.RecordType(req.RecordType),
	}

	created, err := a.BreakRepository.Create(ctx, data)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to create break record: %w", err)
	}

	return mapBreakToResponse(created), nil
}

// ListBreaks implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListBreaks(ctx context.Context, employeeName string, date string) ([]attendance.BreakResponse, error) {
	breaks, err := a.BreakRepository.ListByEmployeeAndDate(ctx, employeeName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}

	responses := make([]attendance.BreakResponse, 0, len(breaks))
	for _, br := range breaks {
		responses = append(responses, mapBreakToResponse(br))
	}
	return responses, nil
}

// DeleteBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteBreak(ctx context.Context, id string) error {
	if err := a.BreakRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrBreakNotFound) {
			return attendance.ErrBreakNotFound
		}
		return fmt.Errorf("failed to delete break record: %w", err)
	}
	return nil
}

func mapRecordToResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            rec.ID,
		Date:          rec.Date,
		EmployeeName:  rec.EmployeeName,
		StartTime:     rec.StartTime,
		EndTime:       rec.EndTime,
		WorkType:      string(rec.WorkType),
		RecordType:    string(rec.RecordType),
		TotalWorkTime: rec.TotalWorkTime,
		CreatedAt:     rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapBreakToResponse(br attendance.BreakRecord) attendance.BreakResponse {
	return attendance.BreakResponse{
		ID:           br.ID,
		Date:         br.Date,
		EmployeeName: br.EmployeeName,
		BreakStart:   br.BreakStart,
		BreakEnd:     br.BreakEnd,
		RecordType:   string(br.RecordType),
	}
}
