package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type CreateInvoiceRequest struct {
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Category   string          `json:"category"`
	Status     string          `json:"status"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if r.Status != string(StatusPending) && r.Status != string(StatusPaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PENDING or PAID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInvoiceRequest struct {
	Title      *string          `json:"title,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Date       *string          `json:"date,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Status     *string          `json:"status,omitempty"`
	EmployeeID *string          `json:"employee_id,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

type InvoiceResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Category   string          `json:"category"`
	Status     string          `json:"status"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}
