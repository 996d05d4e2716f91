package response

import (
	"errors"
	"net/http"

	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/domain/auth"
	"github.com/workshift-app/workshift-go/internal/domain/user"
	"github.com/workshift-app/workshift-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		BadRequest(w, "Email already registered", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role gating
	case errors.Is(err, user.ErrEmployeeAccessRequired):
		Forbidden(w, "Only employees can perform this action")
	case errors.Is(err, user.ErrEmployerAccessRequired):
		Forbidden(w, "Only employers can perform this action")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Punch errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		BadRequest(w, "Already punched in today", nil)
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "No active punch-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		BadRequest(w, "Already punched out today", nil)
	case errors.Is(err, attendance.ErrShiftAlreadyClosed):
		BadRequest(w, "Already punched out", nil)

	// Break errors
	case errors.Is(err, attendance.ErrMustPunchInFirst):
		BadRequest(w, "Must punch in before starting a break", nil)
	case errors.Is(err, attendance.ErrBreakInProgress):
		BadRequest(w, "Break already in progress", nil)
	case errors.Is(err, attendance.ErrBreakAlreadyTaken):
		BadRequest(w, "Break already taken today", nil)
	case errors.Is(err, attendance.ErrNoActiveBreak):
		BadRequest(w, "No active break found", nil)
	case errors.Is(err, attendance.ErrBreakAlreadyEnded):
		BadRequest(w, "Break already ended", nil)

	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
