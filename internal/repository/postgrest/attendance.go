package postgrest

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/postgrest"
)

const attendanceTable = "attendance"

type AttendanceRepositoryImpl struct {
	client *postgrest.Client
}

func NewAttendanceRepository(client *postgrest.Client) attendance.AttendanceRepository {
	return &AttendanceRepositoryImpl{client: client}
}

// FindByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Record, error) {
	var rows []attendance.Record
	q := postgrest.NewQuery().Eq("employee_id", employeeID).Eq("date", date)
	if err := r.client.Select(ctx, attendanceTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	var rows []attendance.Record
	if err := r.client.Insert(ctx, attendanceTable, record, &rows); err != nil {
		return attendance.Record{}, err
	}
	if len(rows) == 0 {
		return attendance.Record{}, fmt.Errorf("store returned no representation for created attendance record")
	}
	return rows[0], nil
}

// UpdateStatus implements attendance.AttendanceRepository. Only the status
// field is patched; the matched row keeps all other fields.
func (r *AttendanceRepositoryImpl) UpdateStatus(ctx context.Context, employeeID string, date string, status string) (attendance.Record, error) {
	var rows []attendance.Record
	q := postgrest.NewQuery().Eq("employee_id", employeeID).Eq("date", date)
	patch := map[string]string{"status": status}
	if err := r.client.Update(ctx, attendanceTable, q, patch, &rows); err != nil {
		return attendance.Record{}, err
	}
	if len(rows) == 0 {
		return attendance.Record{}, fmt.Errorf("store returned no representation for updated attendance record")
	}
	return rows[0], nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	var rows []attendance.Record
	q := postgrest.NewQuery().Eq("employee_id", employeeID).OrderDesc("date")
	if err := r.client.Select(ctx, attendanceTable, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Record, error) {
	var rows []attendance.Record
	q := postgrest.NewQuery().OrderDesc("date")
	if err := r.client.Select(ctx, attendanceTable, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := postgrest.NewQuery().Eq("employee_id", employeeID)
	return r.client.Delete(ctx, attendanceTable, q)
}
