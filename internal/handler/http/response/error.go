package response

import (
	"errors"
	"net/http"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/assistant"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/auth"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/country"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/employee"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		Forbidden(w, "No admin account for this Google account")

	// User / permission errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrCrossCountryAccess):
		Forbidden(w, "Your role does not allow access to this country")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Country errors
	case errors.Is(err, country.ErrUnknownCountry):
		BadRequest(w, "Unknown country; must be one of India, France, USA", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrProfileCountryMismatch):
		BadRequest(w, "Profile data does not match employee country", nil)
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Country profile not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollExistsForPeriod):
		Conflict(w, "Payroll already exists for this employee in the selected period")
	case errors.Is(err, payroll.ErrNoPayrollTypeSelected):
		BadRequest(w, "At least one payroll type must be selected", nil)
	case errors.Is(err, payroll.ErrNegativeAmount):
		BadRequest(w, "Amounts must be non-negative", nil)
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPayrollTypeNotFound):
		NotFound(w, "Payroll type not found")

	// Assistant domain errors
	case errors.Is(err, assistant.ErrEmptyQuestion):
		BadRequest(w, "Question cannot be empty", nil)
	case errors.Is(err, assistant.ErrUnsafeSQL), errors.Is(err, assistant.ErrNoSQLGenerated):
		BadRequest(w, "Could not produce a safe query for this question", nil)
	case errors.Is(err, assistant.ErrModelsUnavailable):
		ServiceUnavailable(w, "Language models are currently unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
