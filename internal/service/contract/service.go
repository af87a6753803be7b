package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/oos-software/hr-backend-go/internal/domain/contract"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

type ContractServiceImpl struct {
	contract.ContractRepository
	employee.EmployeeRepository
}

func NewContractService(contractRepository contract.ContractRepository, employeeRepository employee.EmployeeRepository) contract.ContractService {
	return &ContractServiceImpl{
		ContractRepository: contractRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements contract.ContractService. Only hired employees sign
// contracts. A missing end date is derived from the start date per
// contract type; the signed date is the creation day.
func (s *ContractServiceImpl) Create(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if emp.Status != employee.StatusHired {
		return contract.ContractResponse{}, contract.ErrEmployeeNotEligible
	}

	endDate := req.EndDate
	if endDate == nil {
		start, _ := validator.IsValidDate(req.StartDate)
		derived := contract.DefaultEndDate(contract.Type(req.Type), start).Format("2006-01-02")
		endDate = &derived
	}

	created, err := s.ContractRepository.Create(ctx, contract.Contract{
		EmployeeID: req.EmployeeID,
		Type:       contract.Type(req.Type),
		StartDate:  req.StartDate,
		EndDate:    endDate,
		Salary:     req.Salary,
		Status:     contract.StatusActive,
		SignedDate: time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return contract.ContractResponse{}, fmt.Errorf("failed to create contract: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements contract.ContractService.
func (s *ContractServiceImpl) GetByID(ctx context.Context, id string) (contract.ContractResponse, error) {
	c, err := s.ContractRepository.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return toResponse(c), nil
}

// List implements contract.ContractService.
func (s *ContractServiceImpl) List(ctx context.Context, filter contract.ListFilter) ([]contract.ContractResponse, error) {
	contracts, err := s.ContractRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	out := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// UpdateStatus implements contract.ContractService.
func (s *ContractServiceImpl) UpdateStatus(ctx context.Context, id string, req contract.UpdateStatusRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}
	if err := s.ContractRepository.UpdateStatus(ctx, id, contract.Status(req.Status)); err != nil {
		return contract.ContractResponse{}, err
	}
	c, err := s.ContractRepository.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return toResponse(c), nil
}

// Delete implements contract.ContractService.
func (s *ContractServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ContractRepository.Delete(ctx, id)
}

func toResponse(c contract.Contract) contract.ContractResponse {
	return contract.ContractResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		Type:         string(c.Type),
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Salary:       c.Salary,
		Status:       string(c.Status),
		SignedDate:   c.SignedDate,
		HasInsurance: contract.HasInsurance(c.Type),
	}
}
