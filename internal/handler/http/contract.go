package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/contract"
	"github.com/oos-software/hr-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &ContractHandlerImpl{contractService: contractService}
}

// Create implements ContractHandler.
func (c *ContractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Contract create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.contractService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Contract create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract created", created)
}

// GetByID implements ContractHandler.
func (c *ContractHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ct, err := c.contractService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ct)
}

// List implements ContractHandler. Query parameters narrow the result:
// ?employee_id=, ?status=.
func (c *ContractHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter contract.ListFilter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		st := contract.Status(v)
		filter.Status = &st
	}

	contracts, err := c.contractService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Contract list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, contracts)
}

// UpdateStatus implements ContractHandler.
func (c *ContractHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req contract.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Contract status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := c.contractService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("Contract status service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements ContractHandler.
func (c *ContractHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.contractService.Delete(r.Context(), id); err != nil {
		slog.Error("Contract delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract deleted", nil)
}
