package invoice

import "context"

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(ctx context.Context, filter ListFilter) ([]Invoice, error)
	Update(ctx context.Context, inv Invoice) (Invoice, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Category   *string
	Status     *Status
	EmployeeID *string
	// Month filters by YYYY-MM prefix of the invoice date.
	Month *string
}
