package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

// Create implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Invoice create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := i.invoiceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Invoice create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created", created)
}

// GetByID implements InvoiceHandler.
func (i *InvoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inv, err := i.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inv)
}

// List implements InvoiceHandler. Query parameters narrow the result:
// ?category=, ?status=, ?employee_id=, ?month=YYYY-MM.
func (i *InvoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter invoice.ListFilter

	if v := r.URL.Query().Get("category"); v != "" {
		filter.Category = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		st := invoice.Status(v)
		filter.Status = &st
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("month"); v != "" {
		filter.Month = &v
	}

	invoices, err := i.invoiceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Invoice list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoices)
}

// Update implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req invoice.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Invoice update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := i.invoiceService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Invoice update service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// MarkPaid implements InvoiceHandler.
func (i *InvoiceHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inv, err := i.invoiceService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("Invoice mark paid service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, inv)
}

// Delete implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := i.invoiceService.Delete(r.Context(), id); err != nil {
		slog.Error("Invoice delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice deleted", nil)
}
