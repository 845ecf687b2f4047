package response

import (
	"errors"
	"net/http"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/auth"
	"github.com/enkonix/hr-backend-go/internal/domain/employee"
	"github.com/enkonix/hr-backend-go/internal/domain/leave"
	"github.com/enkonix/hr-backend-go/internal/domain/location"
	"github.com/enkonix/hr-backend-go/internal/domain/payroll"
	"github.com/enkonix/hr-backend-go/internal/domain/user"
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, "HR privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "A session is already open for today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open session to close")
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")
	case errors.Is(err, attendance.ErrSummaryConflict):
		Conflict(w, "Monthly summary was modified concurrently, retry")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrDuplicateRequest):
		Conflict(w, "A leave request for this date already exists")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be accepted or rejected", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryProfileNotFound):
		NotFound(w, "Salary profile not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrSummaryRequired):
		BadRequest(w, "Generate the monthly summary before the payslip", nil)

	// Location domain errors
	case errors.Is(err, location.ErrAssignmentNotFound):
		NotFound(w, "Work zone assignment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
