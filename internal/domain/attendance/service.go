package attendance

import "context"

type AttendanceService interface {
	// Upsert records one employee-day; a repeat write for the same day
	// replaces the earlier one.
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	ListByMonth(ctx context.Context, month string) ([]AttendanceResponse, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
