package attendance

import "context"

type AttendanceRepository interface {
	// Upsert writes the day record, replacing any existing one for the same
	// (employee, date); timesheet entry is last-write-wins.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	ListByMonth(ctx context.Context, month string) ([]Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}
