package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, to_char(date, 'YYYY-MM-DD'), status, leave_type,
	check_in, check_out, note, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.LeaveType,
		&a.CheckIn, &a.CheckOut, &a.Note, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to scan attendance record: %w", err)
	}
	return a, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	// One logical record per (employee, date); re-entering a day replaces it.
	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, leave_type, check_in, check_out, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			leave_type = EXCLUDED.leave_type,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING ` + attendanceColumns + `
	`

	return scanAttendance(q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Date, a.Status, a.LeaveType, a.CheckIn, a.CheckOut, a.Note,
	))
}

func (r *attendanceRepository) ListByMonth(ctx context.Context, month string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE to_char(date, 'YYYY-MM') = $1
		ORDER BY employee_id, date
	`

	return r.queryMany(ctx, q, query, month)
}

func (r *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date
	`

	return r.queryMany(ctx, q, query, employeeID, month)
}

func (r *attendanceRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
