package employee

import (
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email"`
	Position          string  `json:"position"`
	DateApplied       *string `json:"date_applied,omitempty"`
	DOB               *string `json:"dob,omitempty"`
	Experience        *string `json:"experience,omitempty"`
	CVFileName        *string `json:"cv_file_name,omitempty"`
	CVFileURL         *string `json:"cv_file_url,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.DateApplied != nil {
		if _, ok := validator.IsValidDate(*r.DateApplied); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_applied", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Email             *string `json:"email,omitempty"`
	Position          *string `json:"position,omitempty"`
	DOB               *string `json:"dob,omitempty"`
	Experience        *string `json:"experience,omitempty"`
	CVFileName        *string `json:"cv_file_name,omitempty"`
	CVFileURL         *string `json:"cv_file_url,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be PROCESSING, WAITING, APPROVED, HIRED or REJECTED"}}
	}
	return nil
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email"`
	Position          string  `json:"position"`
	DateApplied       *string `json:"date_applied,omitempty"`
	Status            string  `json:"status"`
	DOB               *string `json:"dob,omitempty"`
	Experience        *string `json:"experience,omitempty"`
	CVFileName        *string `json:"cv_file_name,omitempty"`
	CVFileURL         *string `json:"cv_file_url,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}
