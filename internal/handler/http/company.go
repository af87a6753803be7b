package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oos-software/hr-backend-go/internal/domain/company"
	"github.com/oos-software/hr-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	settingsService company.SettingsService
}

func NewCompanyHandler(settingsService company.SettingsService) CompanyHandler {
	return &CompanyHandlerImpl{settingsService: settingsService}
}

// Get implements CompanyHandler.
func (c *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("Company settings get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Company settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := c.settingsService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Company settings update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}
