package postgrest

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/postgrest"
)

const employeesTable = "employees"

type EmployeeRepositoryImpl struct {
	client *postgrest.Client
}

func NewEmployeeRepository(client *postgrest.Client) employee.EmployeeRepository {
	return &EmployeeRepositoryImpl{client: client}
}

// FindByEmployeeID implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	var rows []employee.Employee
	q := postgrest.NewQuery().Eq("employee_id", employeeID)
	if err := r.client.Select(ctx, employeesTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// FindByEmail implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var rows []employee.Employee
	q := postgrest.NewQuery().Eq("email", email)
	if err := r.client.Select(ctx, employeesTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var rows []employee.Employee
	q := postgrest.NewQuery().OrderDesc("created_at")
	if err := r.client.Select(ctx, employeesTable, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	var rows []employee.Employee
	if err := r.client.Insert(ctx, employeesTable, newEmployee, &rows); err != nil {
		return employee.Employee{}, err
	}
	if len(rows) == 0 {
		return employee.Employee{}, fmt.Errorf("store returned no representation for created employee")
	}
	return rows[0], nil
}

// DeleteByEmployeeID implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := postgrest.NewQuery().Eq("employee_id", employeeID)
	return r.client.Delete(ctx, employeesTable, q)
}
