package attendance

import (
	"context"
	"fmt"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// Upsert implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// The timesheet only accepts records for known employees.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	leaveType := attendance.LeaveType(req.LeaveType)
	if req.LeaveType == "" {
		leaveType = attendance.LeaveNone
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     attendance.Status(req.Status),
		LeaveType:  leaveType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Note:       req.Note,
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return toResponse(saved), nil
}

// ListByMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	records, err := s.AttendanceRepository.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListByEmployeeMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     string(a.Status),
		LeaveType:  string(a.LeaveType),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Note:       a.Note,
	}
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}
