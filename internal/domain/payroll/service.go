package payroll

import "context"

type PayrollService interface {
	// GetPayroll computes the payroll table for every hired employee in a
	// month, plus the month totals.
	GetPayroll(ctx context.Context, month string) (PayrollSummaryResponse, error)
	// GetBonus returns the saved bonus record verbatim, or an estimate when
	// none was saved.
	GetBonus(ctx context.Context, employeeID, month string) (BonusResponse, error)
	// SaveBonus fully replaces the bonus record for an employee-month.
	SaveBonus(ctx context.Context, employeeID, month string, req SaveBonusRequest) (BonusResponse, error)
	// ConfirmPayment marks the employee-month paid and appends exactly one
	// salary invoice, in one transaction. A second confirmation fails with
	// ErrAlreadyPaid.
	ConfirmPayment(ctx context.Context, employeeID, month string) (ConfirmPaymentResponse, error)
	// GetPayslip projects the same numbers into the printable layout.
	GetPayslip(ctx context.Context, employeeID, month string) (PayslipResponse, error)
}
