package company

import "time"

// Settings is the single company profile row; the payslip header and the
// printed contract templates read from it.
type Settings struct {
	ID                     string
	Name                   string
	TaxID                  string
	Address                string
	Phone                  string
	Email                  string
	LogoURL                string
	RepresentativeName     string
	RepresentativePosition string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
