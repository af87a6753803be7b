package contract

import "context"

type ContractService interface {
	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ContractResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string) error
}
