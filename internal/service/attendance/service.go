package attendance

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService.
//
// The upsert is a read-then-branch-write, not a store-native atomic upsert:
// two concurrent marks for the same (employee_id, date) pair can both see no
// existing row and both insert. On the update branch only the status field is
// patched; every other field of the matched row stays untouched.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	owner, err := s.employeeRepo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if owner == nil {
		return attendance.Record{}, employee.ErrEmployeeNotFound
	}

	existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to check attendance record: %w", err)
	}

	if existing != nil {
		updated, err := s.attendanceRepo.UpdateStatus(ctx, req.EmployeeID, req.Date, req.Status)
		if err != nil {
			return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return updated, nil
	}

	created, err := s.attendanceRepo.Create(ctx, req.ToRecord())
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	owner, err := s.employeeRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if owner == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// ListAllAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAllAttendance(ctx context.Context) ([]attendance.Record, error) {
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}
