package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrBreakNotFound   = errors.New("break record not found")
	ErrDuplicateRecord = errors.New("an identical attendance record already exists")
)
