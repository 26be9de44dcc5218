package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
// Rows are keyed by the (employee_id, date) pair.
type AttendanceRepository interface {
	// FindByEmployeeAndDate retrieves the record for a specific employee on a
	// specific date, or nil if none exists. Used to decide insert vs update.
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Record, error)

	// Create inserts a new attendance record and returns the created row.
	Create(ctx context.Context, record Record) (Record, error)

	// UpdateStatus patches only the status field of the record for the given
	// (employee_id, date) pair and returns the updated row.
	UpdateStatus(ctx context.Context, employeeID string, date string, status string) (Record, error)

	// ListByEmployee retrieves all records for an employee, newest date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListAll retrieves all attendance records, newest date first.
	ListAll(ctx context.Context) ([]Record, error)

	// DeleteByEmployee deletes all records for an employee.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
