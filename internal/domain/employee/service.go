package employee

import "context"

type EmployeeService interface {
	// CreateEmployee creates a new employee after checking employee_id and
	// email uniqueness against the store.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// ListEmployees lists all employees, newest first.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// DeleteEmployee deletes an employee and all of its attendance records.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
