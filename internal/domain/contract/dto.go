package contract

import (
	"github.com/shopspring/decimal"

	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	StartDate  string          `json:"start_date"`
	EndDate    *string         `json:"end_date,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be PROBATION, 1_YEAR, 3_YEAR or INDEFINITE"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be ACTIVE, EXPIRED or TERMINATED"}}
	}
	return nil
}

type ContractResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Type         string          `json:"type"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
	SignedDate   string          `json:"signed_date"`
	HasInsurance bool            `json:"has_insurance"`
}
