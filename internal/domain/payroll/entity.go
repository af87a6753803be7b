package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// BonusDetails is the seven-component bonus breakdown for one employee-month.
// KPIActual and ChildSupportActual are always derived from their base fields
// by pro-ration; they are never edited directly.
type BonusDetails struct {
	ID                 string
	EmployeeID         string
	Month              string // YYYY-MM
	KPIBase            decimal.Decimal
	KPIActual          decimal.Decimal
	Attendance         decimal.Decimal
	Transport          decimal.Decimal
	Phone              decimal.Decimal
	ChildSupportBase   decimal.Decimal
	ChildSupportActual decimal.Decimal
	PerDiem            decimal.Decimal
	Other              decimal.Decimal
	PaymentStatus      PaymentStatus
	Note               *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Key returns the employee-month key the bonus ledger is tracked under.
func Key(employeeID, month string) string {
	return employeeID + "_" + month
}
