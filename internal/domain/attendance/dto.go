package attendance

import (
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	LeaveType  string  `json:"leave_type"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Status != string(StatusPresent) && r.Status != string(StatusAbsent) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PRESENT or ABSENT"})
	}
	if r.LeaveType != "" && !validator.IsInSlice(r.LeaveType, []string{
		string(LeaveNone), string(LeaveUnauthorized), string(LeaveAuthorized),
		string(LeaveSick), string(LeaveAnnual), string(LeaveMaternity),
	}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	if r.CheckIn != nil && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be HH:mm"})
	}
	if r.CheckOut != nil && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be HH:mm"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	LeaveType  string  `json:"leave_type"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Note       *string `json:"note,omitempty"`
}
