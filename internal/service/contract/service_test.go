package contract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oos-software/hr-backend-go/internal/domain/contract"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
)

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if e, ok := s.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, status *employee.Status) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		if status == nil || e.Status == *status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) GetHired(ctx context.Context) ([]employee.Employee, error) {
	hired := employee.StatusHired
	return s.List(ctx, &hired)
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	e, ok := s.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Status = status
	s.employees[id] = e
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(s.employees, id)
	return nil
}

type stubContractRepo struct {
	contracts map[string]contract.Contract
}

func (s *stubContractRepo) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.contracts[c.ID] = c
	return c, nil
}

func (s *stubContractRepo) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	if c, ok := s.contracts[id]; ok {
		return c, nil
	}
	return contract.Contract{}, contract.ErrContractNotFound
}

func (s *stubContractRepo) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	var out []contract.Contract
	for _, c := range s.contracts {
		if filter.EmployeeID != nil && c.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *stubContractRepo) UpdateStatus(ctx context.Context, id string, status contract.Status) error {
	c, ok := s.contracts[id]
	if !ok {
		return contract.ErrContractNotFound
	}
	c.Status = status
	s.contracts[id] = c
	return nil
}

func (s *stubContractRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.contracts[id]; !ok {
		return contract.ErrContractNotFound
	}
	delete(s.contracts, id)
	return nil
}

func newService() (contract.ContractService, *stubContractRepo, *stubEmployeeRepo) {
	contracts := &stubContractRepo{contracts: map[string]contract.Contract{}}
	employees := &stubEmployeeRepo{employees: map[string]employee.Employee{}}
	return NewContractService(contracts, employees), contracts, employees
}

func addHired(employees *stubEmployeeRepo, id, name string) {
	employees.employees[id] = employee.Employee{
		ID: id, Name: name, Position: "Developer", Status: employee.StatusHired,
	}
}

func TestCreateContractDerivesEndDate(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")

	cases := []struct {
		typ     string
		wantEnd string
	}{
		{string(contract.TypeProbation), "2025-08-15"},
		{string(contract.TypeOneYear), "2026-07-01"},
		{string(contract.TypeThreeYear), "2028-07-01"},
		{string(contract.TypeIndefinite), "2026-07-01"},
	}

	for _, tc := range cases {
		resp, err := svc.Create(context.Background(), contract.CreateContractRequest{
			EmployeeID: "dev",
			Type:       tc.typ,
			StartDate:  "2025-07-01",
			Salary:     decimal.NewFromInt(20_000_000),
		})
		require.NoError(t, err, tc.typ)
		require.NotNil(t, resp.EndDate, tc.typ)
		assert.Equal(t, tc.wantEnd, *resp.EndDate, tc.typ)
		assert.Equal(t, string(contract.StatusActive), resp.Status)
		assert.Equal(t, time.Now().Format("2006-01-02"), resp.SignedDate)
	}
}

func TestCreateContractKeepsExplicitEndDate(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")

	end := "2025-12-31"
	resp, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeOneYear),
		StartDate:  "2025-07-01",
		EndDate:    &end,
		Salary:     decimal.NewFromInt(20_000_000),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, end, *resp.EndDate)
}

func TestCreateContractInsuranceFollowsType(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")

	probation, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeProbation),
		StartDate:  "2025-07-01",
	})
	require.NoError(t, err)
	assert.False(t, probation.HasInsurance)

	yearly, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeOneYear),
		StartDate:  "2025-07-01",
	})
	require.NoError(t, err)
	assert.True(t, yearly.HasInsurance)
}

func TestCreateContractRequiresHiredEmployee(t *testing.T) {
	svc, _, employees := newService()
	employees.employees["applicant"] = employee.Employee{
		ID: "applicant", Name: "Le Thi B", Position: "Tester", Status: employee.StatusWaiting,
	}

	_, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "applicant",
		Type:       string(contract.TypeProbation),
		StartDate:  "2025-07-01",
	})
	assert.ErrorIs(t, err, contract.ErrEmployeeNotEligible)

	_, err = svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "ghost",
		Type:       string(contract.TypeProbation),
		StartDate:  "2025-07-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateContractRejectsInvalid(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")

	_, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       "SEASONAL",
		StartDate:  "2025-07-01",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeOneYear),
		StartDate:  "01/07/2025",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeOneYear),
		StartDate:  "2025-07-01",
		Salary:     decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestUpdateContractStatus(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")

	created, err := svc.Create(context.Background(), contract.CreateContractRequest{
		EmployeeID: "dev",
		Type:       string(contract.TypeOneYear),
		StartDate:  "2025-07-01",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, contract.UpdateStatusRequest{
		Status: string(contract.StatusTerminated),
	})
	require.NoError(t, err)
	assert.Equal(t, string(contract.StatusTerminated), updated.Status)

	_, err = svc.UpdateStatus(context.Background(), created.ID, contract.UpdateStatusRequest{Status: "PAUSED"})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(context.Background(), "ghost", contract.UpdateStatusRequest{
		Status: string(contract.StatusExpired),
	})
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestListContractsFilters(t *testing.T) {
	svc, _, employees := newService()
	addHired(employees, "dev", "Tran Van A")
	addHired(employees, "ops", "Le Thi B")

	for _, id := range []string{"dev", "ops"} {
		_, err := svc.Create(context.Background(), contract.CreateContractRequest{
			EmployeeID: id,
			Type:       string(contract.TypeOneYear),
			StartDate:  "2025-07-01",
		})
		require.NoError(t, err)
	}

	devID := "dev"
	out, err := svc.List(context.Background(), contract.ListFilter{EmployeeID: &devID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "dev", out[0].EmployeeID)

	terminated := contract.StatusTerminated
	out, err = svc.List(context.Background(), contract.ListFilter{Status: &terminated})
	require.NoError(t, err)
	assert.Empty(t, out)
}
