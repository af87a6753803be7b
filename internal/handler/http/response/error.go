package response

import (
	"errors"
	"net/http"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/domain/auth"
	"github.com/oos-software/hr-backend-go/internal/domain/company"
	"github.com/oos-software/hr-backend-go/internal/domain/contract"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/domain/payroll"
	"github.com/oos-software/hr-backend-go/internal/domain/user"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Salary already paid for this month")
	case errors.Is(err, payroll.ErrBonusRecordNotFound):
		NotFound(w, "Bonus record not found")
	case errors.Is(err, payroll.ErrInvalidMonthKey):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrEmployeeNotPayable):
		BadRequest(w, "Employee is not hired", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrEmployeeNotEligible):
		BadRequest(w, "Employee is not hired", nil)

	// Company domain errors
	case errors.Is(err, company.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
