package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/payroll"
	"github.com/oos-software/hr-backend-go/internal/domain/user"
	"github.com/oos-software/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayroll(w http.ResponseWriter, r *http.Request)
	GetBonus(w http.ResponseWriter, r *http.Request)
	SaveBonus(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetPayroll implements PayrollHandler. The month comes from the query
// string, e.g. GET /payroll?month=2025-07.
func (p *PayrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	summary, err := p.payrollService.GetPayroll(r.Context(), month)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetBonus implements PayrollHandler.
func (p *PayrollHandlerImpl) GetBonus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := chi.URLParam(r, "month")

	bonus, err := p.payrollService.GetBonus(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("GetBonus service error", "error", err, "employee_id", employeeID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bonus)
}

// SaveBonus implements PayrollHandler.
func (p *PayrollHandlerImpl) SaveBonus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := chi.URLParam(r, "month")

	var req payroll.SaveBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveBonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	bonus, err := p.payrollService.SaveBonus(r.Context(), employeeID, month, req)
	if err != nil {
		slog.Error("SaveBonus service error", "error", err, "employee_id", employeeID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bonus)
}

// ConfirmPayment implements PayrollHandler.
func (p *PayrollHandlerImpl) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := chi.URLParam(r, "month")

	result, err := p.payrollService.ConfirmPayment(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("ConfirmPayment service error", "error", err, "employee_id", employeeID, "month", month)
		response.HandleError(w, err)
		return
	}

	slog.Info("salary payment confirmed", "employee_id", employeeID, "month", month)
	response.Created(w, "Payment confirmed", result)
}

// GetPayslip implements PayrollHandler. Managers can fetch any payslip; a
// regular user only their own.
func (p *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := chi.URLParam(r, "month")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	role, _ := claims["role"].(string)
	if role == string(user.RoleUser) {
		ownID, _ := claims["employee_id"].(string)
		if ownID == "" || ownID != employeeID {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}
	}

	payslip, err := p.payrollService.GetPayslip(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("GetPayslip service error", "error", err, "employee_id", employeeID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}
