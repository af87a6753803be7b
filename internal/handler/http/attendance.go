package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upsert implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Attendance upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Attendance upsert service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListByMonth implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	records, err := a.attendanceService.ListByMonth(r.Context(), month)
	if err != nil {
		slog.Error("Attendance list service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByEmployeeMonth implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListByEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	records, err := a.attendanceService.ListByEmployeeMonth(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("Attendance list service error", "error", err, "employee_id", employeeID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.attendanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Attendance delete service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
