package attendance

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRecord maps the request to the row shape sent to the store.
func (r *MarkAttendanceRequest) ToRecord() Record {
	return Record{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     r.Status,
	}
}
