package payroll

import "errors"

// Payroll domain errors
var (
	ErrInvalidReferenceDate = errors.New("reference date must be a valid YYYY-MM-DD date")
)
