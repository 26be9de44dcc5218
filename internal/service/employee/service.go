package employee

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
//
// The uniqueness checks and the insert are separate round-trips with no
// transactional isolation; concurrent creates with the same employee_id or
// email can both pass the checks. The store-level constraint, where present,
// is the backstop.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.employeeRepo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee ID: %w", err)
	}
	if existing != nil {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}

	existingEmail, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existingEmail != nil {
		return employee.Employee{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee implements employee.EmployeeService.
//
// Attendance rows are deleted before the employee row so that no orphaned
// attendance is left behind; if the second delete fails the employee row
// survives with no attendance, and no compensation is attempted.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	existing, err := s.employeeRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if existing == nil {
		return employee.ErrEmployeeNotFound
	}

	if err := s.attendanceRepo.DeleteByEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}

	if err := s.employeeRepo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
