package response

import (
	"errors"
	"net/http"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/auth"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/user"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAlreadyActive):
		Conflict(w, "User account is already active")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOpenCycleExists):
		Conflict(w, "Already checked in, check out first")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in to check out from")
	case errors.Is(err, attendance.ErrFactNotFound):
		NotFound(w, "Attendance record not found")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, request.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
