package employee

import "time"

// Status is the recruitment pipeline state. Only hired candidates are
// payroll-eligible.
type Status string

const (
	StatusProcessing Status = "PROCESSING"
	StatusWaiting    Status = "WAITING"
	StatusApproved   Status = "APPROVED"
	StatusHired      Status = "HIRED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusWaiting, StatusApproved, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Employee covers both applicants and hires; the status field tells them
// apart. Payroll reads these records and never writes them.
type Employee struct {
	ID                string
	Name              string
	Phone             string
	Email             string
	Position          string
	DateApplied       *string // YYYY-MM-DD
	Status            Status
	DOB               *string // YYYY-MM-DD
	Experience        *string
	CVFileName        *string
	CVFileURL         *string
	BankName          *string
	BankAccountNumber *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
