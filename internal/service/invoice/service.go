package invoice

import (
	"context"
	"fmt"

	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type InvoiceServiceImpl struct {
	invoice.InvoiceRepository
}

func NewInvoiceService(invoiceRepository invoice.InvoiceRepository) invoice.InvoiceService {
	return &InvoiceServiceImpl{InvoiceRepository: invoiceRepository}
}

// Create implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	created, err := s.InvoiceRepository.Create(ctx, invoice.Invoice{
		Title:      req.Title,
		Amount:     req.Amount,
		Date:       req.Date,
		Category:   req.Category,
		Status:     invoice.Status(req.Status),
		EmployeeID: req.EmployeeID,
		Notes:      req.Notes,
	})
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toResponse(inv), nil
}

// List implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) List(ctx context.Context, filter invoice.ListFilter) ([]invoice.InvoiceResponse, error) {
	if filter.Month != nil && !validator.IsValidMonthKey(*filter.Month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	invoices, err := s.InvoiceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	out := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toResponse(inv))
	}
	return out, nil
}

// Update implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Update(ctx context.Context, id string, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if req.Title != nil {
		inv.Title = *req.Title
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return invoice.InvoiceResponse{}, validator.ValidationErrors{{Field: "amount", Message: "must be non-negative"}}
		}
		inv.Amount = *req.Amount
	}
	if req.Date != nil {
		if _, ok := validator.IsValidDate(*req.Date); !ok {
			return invoice.InvoiceResponse{}, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
		}
		inv.Date = *req.Date
	}
	if req.Category != nil {
		inv.Category = *req.Category
	}
	if req.Status != nil {
		if *req.Status != string(invoice.StatusPending) && *req.Status != string(invoice.StatusPaid) {
			return invoice.InvoiceResponse{}, validator.ValidationErrors{{Field: "status", Message: "must be PENDING or PAID"}}
		}
		inv.Status = invoice.Status(*req.Status)
	}
	if req.EmployeeID != nil {
		inv.EmployeeID = req.EmployeeID
	}
	if req.Notes != nil {
		inv.Notes = req.Notes
	}

	updated, err := s.InvoiceRepository.Update(ctx, inv)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to update invoice: %w", err)
	}
	return toResponse(updated), nil
}

// MarkPaid implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) MarkPaid(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	if err := s.InvoiceRepository.UpdateStatus(ctx, id, invoice.StatusPaid); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toResponse(inv), nil
}

// Delete implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.InvoiceRepository.Delete(ctx, id)
}

func toResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	return invoice.InvoiceResponse{
		ID:         inv.ID,
		Title:      inv.Title,
		Amount:     inv.Amount,
		Date:       inv.Date,
		Category:   inv.Category,
		Status:     string(inv.Status),
		EmployeeID: inv.EmployeeID,
		Notes:      inv.Notes,
	}
}
