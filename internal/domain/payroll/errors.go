package payroll

import "errors"

var (
	ErrBonusRecordNotFound = errors.New("bonus record not found")
	ErrBonusRecordExists   = errors.New("bonus record already exists for this employee-month")
	ErrAlreadyPaid         = errors.New("salary already paid for this employee-month")
	ErrInvalidMonthKey     = errors.New("invalid month key, expected YYYY-MM")
	ErrEmployeeNotPayable  = errors.New("employee is not hired, no payroll applies")
)
