package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepository{db: db}
}

const breakColumns = `id, date, employee_name, break_start, break_end, record_type, created_at, updated_at`

// Create implements attendance.BreakRepository.
func (b *breakRepository) Create(ctx context.Context, record attendance.BreakRecord) (attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO break_records (
			id, date, employee_name, break_start, break_end, record_type
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.Date,
		record.EmployeeName,
		record.BreakStart,
		record.BreakEnd,
		string(record.RecordType),
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to create break record: %w", err)
	}

	return record, nil
}

// ListByEmployee implements attendance.BreakRepository.
func (b *breakRepository) ListByEmployee(ctx context.Context, employeeName string) ([]attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records
		WHERE employee_name = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeName)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}
	defer rows.Close()

	return collectBreakRows(rows)
}

// ListByEmployeeAndDate implements attendance.BreakRepository.
func (b *breakRepository) ListByEmployeeAndDate(ctx context.Context, employeeName string, date string) ([]attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records
		WHERE employee_name = $1 AND date = $2
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}
	defer rows.Close()

	return collectBreakRows(rows)
}

// Delete implements attendance.BreakRepository.
func (b *breakRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, b.db)

	tag, err := q.Exec(ctx, `DELETE FROM break_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete break record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrBreakNotFound
	}

	return nil
}

func collectBreakRows(rows pgx.Rows) ([]attendance.BreakRecord, error) {
	var records []attendance.BreakRecord
	for rows.Next() {
		var rec attendance.BreakRecord
		var recordType string
		err := rows.Scan(
			&rec.ID, &rec.Date, &rec.EmployeeName, &rec.BreakStart, &rec.BreakEnd,
			&recordType, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break record: %w", err)
		}
		rec.RecordType = attendance.RecordType(recordType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read break records: %w", err)
	}
	return records, nil
}
