package response

import (
	"errors"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/postgrest"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Domain errors take
// precedence; anything else is treated as a store failure and surfaced as a
// server error carrying the store's raw message.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Employee domain errors
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already exists")

	// Default
	default:
		var storeErr *postgrest.StoreError
		if errors.As(err, &storeErr) {
			InternalServerError(w, storeErr.Error())
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
