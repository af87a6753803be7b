package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/oos-software/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// Create implements employee.EmployeeService. New records enter the pipeline
// as PROCESSING candidates.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateApplied := req.DateApplied
	if dateApplied == nil {
		today := time.Now().Format("2006-01-02")
		dateApplied = &today
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Position:          req.Position,
		DateApplied:       dateApplied,
		Status:            employee.StatusProcessing,
		DOB:               req.DOB,
		Experience:        req.Experience,
		CVFileName:        req.CVFileName,
		CVFileURL:         req.CVFileURL,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, status *employee.Status) ([]employee.EmployeeResponse, error) {
	if status != nil && !status.Valid() {
		return nil, employee.ErrInvalidStatus
	}

	employees, err := s.EmployeeRepository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toResponse(emp))
	}
	return out, nil
}

// Update implements employee.EmployeeService. Only the provided fields
// change; status moves through UpdateStatus, not here.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.DOB != nil {
		emp.DOB = req.DOB
	}
	if req.Experience != nil {
		emp.Experience = req.Experience
	}
	if req.CVFileName != nil {
		emp.CVFileName = req.CVFileName
	}
	if req.CVFileURL != nil {
		emp.CVFileURL = req.CVFileURL
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = req.BankAccountNumber
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return toResponse(updated), nil
}

// UpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.UpdateStatus(ctx, id, employee.Status(req.Status)); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Phone:             e.Phone,
		Email:             e.Email,
		Position:          e.Position,
		DateApplied:       e.DateApplied,
		Status:            string(e.Status),
		DOB:               e.DOB,
		Experience:        e.Experience,
		CVFileName:        e.CVFileName,
		CVFileURL:         e.CVFileURL,
		BankName:          e.BankName,
		BankAccountNumber: e.BankAccountNumber,
	}
}
