package response

import (
	"errors"
	"net/http"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/attendance"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/auth"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/user"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrBreakNotFound):
		NotFound(w, "Break record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "An identical attendance record already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidReferenceDate):
		BadRequest(w, "reference_date must be a valid YYYY-MM-DD date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
