package payroll

import "context"

// BonusRepository persists the saved bonus ledger, keyed by employee-month.
// Presence of a row means the month was explicitly saved (or fast-paid);
// estimates are never written here.
type BonusRepository interface {
	GetByEmployeeMonth(ctx context.Context, employeeID, month string) (BonusDetails, error)
	// GetByEmployeeMonthForUpdate takes a row lock so two payment
	// confirmations for the same employee-month serialize.
	GetByEmployeeMonthForUpdate(ctx context.Context, employeeID, month string) (BonusDetails, error)
	ListByMonth(ctx context.Context, month string) ([]BonusDetails, error)
	// Create inserts a new record and returns ErrBonusRecordExists when the
	// employee-month is already taken. The row lock above does not cover the
	// no-row case, so the first write for a month must fail on conflict
	// rather than silently overwrite a concurrent writer.
	Create(ctx context.Context, b BonusDetails) (BonusDetails, error)
	// Upsert replaces the whole record; saving a bonus is never a partial
	// update.
	Upsert(ctx context.Context, b BonusDetails) (BonusDetails, error)
}
