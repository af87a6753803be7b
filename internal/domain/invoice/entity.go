package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// CategorySalary is the category payment confirmations file their expense
// under. Other categories are free-form.
const CategorySalary = "Lương & Thưởng"

type Invoice struct {
	ID         string
	Title      string
	Amount     decimal.Decimal
	Date       string // YYYY-MM-DD
	Category   string
	Status     Status
	EmployeeID *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
