package contract

import "errors"

var (
	ErrContractNotFound    = errors.New("contract not found")
	ErrEmployeeNotEligible = errors.New("employee is not hired, no contract applies")
)
