package invoice

import "context"

type InvoiceService interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (InvoiceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]InvoiceResponse, error)
	Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string) (InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
}
