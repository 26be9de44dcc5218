package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance records attendance for an employee on a date. Marking the
	// same (employee_id, date) pair again updates the status of the existing
	// row instead of creating a duplicate.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (Record, error)

	// GetEmployeeAttendance lists an employee's records, newest date first.
	GetEmployeeAttendance(ctx context.Context, employeeID string) ([]Record, error)

	// ListAllAttendance lists every attendance record, newest date first.
	ListAllAttendance(ctx context.Context) ([]Record, error)
}
