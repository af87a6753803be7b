package company

import (
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	Name                   string `json:"name"`
	TaxID                  string `json:"tax_id"`
	Address                string `json:"address"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	LogoURL                string `json:"logo_url"`
	RepresentativeName     string `json:"representative_name"`
	RepresentativePosition string `json:"representative_position"`
}

type UpdateSettingsRequest struct {
	Name                   *string `json:"name,omitempty"`
	TaxID                  *string `json:"tax_id,omitempty"`
	Address                *string `json:"address,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	Email                  *string `json:"email,omitempty"`
	LogoURL                *string `json:"logo_url,omitempty"`
	RepresentativeName     *string `json:"representative_name,omitempty"`
	RepresentativePosition *string `json:"representative_position,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
