package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/payroll"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) payroll.BonusRepository {
	return &bonusRepository{db: db}
}

const bonusColumns = `
	id, employee_id, month, kpi_base, kpi_actual, attendance, transport, phone,
	child_support_base, child_support_actual, per_diem, other, payment_status,
	note, created_at, updated_at
`

func scanBonus(row pgx.Row) (payroll.BonusDetails, error) {
	var b payroll.BonusDetails
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Month, &b.KPIBase, &b.KPIActual, &b.Attendance,
		&b.Transport, &b.Phone, &b.ChildSupportBase, &b.ChildSupportActual,
		&b.PerDiem, &b.Other, &b.PaymentStatus, &b.Note, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.BonusDetails{}, payroll.ErrBonusRecordNotFound
		}
		return payroll.BonusDetails{}, fmt.Errorf("failed to scan bonus record: %w", err)
	}
	return b, nil
}

func (r *bonusRepository) GetByEmployeeMonth(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_records
		WHERE employee_id = $1 AND month = $2
	`

	return scanBonus(q.QueryRow(ctx, query, employeeID, month))
}

func (r *bonusRepository) GetByEmployeeMonthForUpdate(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_records
		WHERE employee_id = $1 AND month = $2
		FOR UPDATE
	`

	return scanBonus(q.QueryRow(ctx, query, employeeID, month))
}

func (r *bonusRepository) ListByMonth(ctx context.Context, month string) ([]payroll.BonusDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_records
		WHERE month = $1
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus records: %w", err)
	}
	defer rows.Close()

	var records []payroll.BonusDetails
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}

func (r *bonusRepository) Create(ctx context.Context, b payroll.BonusDetails) (payroll.BonusDetails, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	// DO NOTHING instead of DO UPDATE: when two transactions race to write
	// the first record for a month, the loser must see the conflict, not
	// overwrite the winner's row.
	query := `
		INSERT INTO bonus_records (
			id, employee_id, month, kpi_base, kpi_actual, attendance, transport,
			phone, child_support_base, child_support_actual, per_diem, other,
			payment_status, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, month) DO NOTHING
		RETURNING ` + bonusColumns + `
	`

	created, err := scanBonus(q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Month, b.KPIBase, b.KPIActual, b.Attendance,
		b.Transport, b.Phone, b.ChildSupportBase, b.ChildSupportActual,
		b.PerDiem, b.Other, b.PaymentStatus, b.Note,
	))
	if errors.Is(err, payroll.ErrBonusRecordNotFound) {
		// DO NOTHING returns no row on conflict.
		return payroll.BonusDetails{}, payroll.ErrBonusRecordExists
	}
	return created, err
}

func (r *bonusRepository) Upsert(ctx context.Context, b payroll.BonusDetails) (payroll.BonusDetails, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	// Full replace on conflict; saving a bonus never merges fields.
	query := `
		INSERT INTO bonus_records (
			id, employee_id, month, kpi_base, kpi_actual, attendance, transport,
			phone, child_support_base, child_support_actual, per_diem, other,
			payment_status, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			kpi_base = EXCLUDED.kpi_base,
			kpi_actual = EXCLUDED.kpi_actual,
			attendance = EXCLUDED.attendance,
			transport = EXCLUDED.transport,
			phone = EXCLUDED.phone,
			child_support_base = EXCLUDED.child_support_base,
			child_support_actual = EXCLUDED.child_support_actual,
			per_diem = EXCLUDED.per_diem,
			other = EXCLUDED.other,
			payment_status = EXCLUDED.payment_status,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING ` + bonusColumns + `
	`

	return scanBonus(q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Month, b.KPIBase, b.KPIActual, b.Attendance,
		b.Transport, b.Phone, b.ChildSupportBase, b.ChildSupportActual,
		b.PerDiem, b.Other, b.PaymentStatus, b.Note,
	))
}
