package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/database"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/sheet"
)

// ImportJobs pulls attendance and break rows out of the HR workbook into
// Postgres so the API serves from a queryable store instead of re-reading the
// file on every request.
type ImportJobs struct {
	workbook        *sheet.Workbook
	attendanceSheet string
	breakSheet      string
	db              *database.DB
}

func NewImportJobs(workbook *sheet.Workbook, attendanceSheet, breakSheet string, db *database.DB) *ImportJobs {
	return &ImportJobs{
		workbook:        workbook,
		attendanceSheet: attendanceSheet,
		breakSheet:      breakSheet,
		db:              db,
	}
}

func (j *ImportJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("import_workbook", interval, j.ImportWorkbook)
}

// ImportWorkbook reads both sheets and appends any row the store does not
// already hold. Existing rows are matched on full content, never on date
// alone: duplicate dates with different times are real data that the
// aggregation layer resolves, so the import must not collapse them.
func (j *ImportJobs) ImportWorkbook(ctx context.Context) error {
	slog.Info("Cron: Starting workbook import", "workbook_attendance_sheet", j.attendanceSheet)

	attendanceRows, err := j.workbook.Rows(j.attendanceSheet)
	if err != nil {
		return fmt.Errorf("failed to read attendance sheet: %w", err)
	}
	breakRows, err := j.workbook.Rows(j.breakSheet)
	if err != nil {
		return fmt.Errorf("failed to read break sheet: %w", err)
	}

	imported, skipped := 0, 0
	for _, row := range attendanceRows {
		rec, ok := sheet.AttendanceFromRow(row)
		if !ok {
			skipped++
			continue
		}

		tag, err := j.db.Pool.Exec(ctx, `
			INSERT INTO attendance_records (id, date, employee_name, start_time, end_time, work_type, record_type, total_work_time)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8
			WHERE NOT EXISTS (
				SELECT 1 FROM attendance_records
				WHERE date = $2 AND employee_name = $3 AND start_time = $4 AND end_time = $5
					AND work_type = $6 AND record_type = $7 AND total_work_time = $8
			)`,
			uuid.NewString(), rec.Date, rec.EmployeeName, rec.StartTime, rec.EndTime,
			string(rec.WorkType), string(rec.RecordType), rec.TotalWorkTime,
		)
		if err != nil {
			slog.Error("Cron: Failed to import attendance row", "date", rec.Date, "employee", rec.EmployeeName, "error", err)
			continue
		}
		imported += int(tag.RowsAffected())
	}

	breakImported := 0
	for _, row := range breakRows {
		rec, ok := sheet.BreakFromRow(row)
		if !ok {
			skipped++
			continue
		}

		tag, err := j.db.Pool.Exec(ctx, `
			INSERT INTO break_records (id, date, employee_name, break_start, break_end, record_type)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE NOT EXISTS (
				SELECT 1 FROM break_records
				WHERE date = $2 AND employee_name = $3 AND break_start = $4 AND break_end = $5
					AND record_type = $6
			)`,
			uuid.NewString(), rec.Date, rec.EmployeeName, rec.BreakStart, rec.BreakEnd, string(rec.RecordType),
		)
		if err != nil {
			slog.Error("Cron: Failed to import break row", "date", rec.Date, "employee", rec.EmployeeName, "error", err)
			continue
		}
		breakImported += int(tag.RowsAffected())
	}

	slog.Info("Cron: Workbook import finished",
		"attendance_imported", imported,
		"breaks_imported", breakImported,
		"rows_skipped", skipped)
	return nil
}
