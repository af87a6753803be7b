package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeProbation  Type = "PROBATION"
	TypeOneYear    Type = "1_YEAR"
	TypeThreeYear  Type = "3_YEAR"
	TypeIndefinite Type = "INDEFINITE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeProbation, TypeOneYear, TypeThreeYear, TypeIndefinite:
		return true
	}
	return false
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusExpired    Status = "EXPIRED"
	StatusTerminated Status = "TERMINATED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusTerminated:
		return true
	}
	return false
}

type Contract struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  string // YYYY-MM-DD
	EndDate    *string
	Salary     decimal.Decimal
	Status     Status
	SignedDate string // YYYY-MM-DD
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultEndDate derives the end date from the start per contract type.
// Probation runs 45 days. Indefinite contracts carry a one-year review
// horizon rather than no end date.
func DefaultEndDate(t Type, start time.Time) time.Time {
	switch t {
	case TypeProbation:
		return start.AddDate(0, 0, 45)
	case TypeThreeYear:
		return start.AddDate(3, 0, 0)
	default:
		return start.AddDate(1, 0, 0)
	}
}

// HasInsurance reports whether the contract type carries statutory
// insurance coverage. Probation contracts do not.
func HasInsurance(t Type) bool {
	return t.Valid() && t != TypeProbation
}
