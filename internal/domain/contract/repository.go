package contract

import "context"

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	List(ctx context.Context, filter ListFilter) ([]Contract, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	EmployeeID *string
	Status     *Status
}
