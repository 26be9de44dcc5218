package employee

import "context"

type EmployeeRepository interface {
	// FindByEmployeeID returns the employee with the given employee code,
	// or nil if no such row exists.
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)

	// FindByEmail returns the employee with the given email, or nil if none.
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// List retrieves all employees ordered by created_at descending.
	List(ctx context.Context) ([]Employee, error)

	// Create inserts a new employee and returns the created row.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// DeleteByEmployeeID deletes the employee row with the given employee code.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
