package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/contract"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `
	id, employee_id, type, to_char(start_date, 'YYYY-MM-DD'),
	to_char(end_date, 'YYYY-MM-DD'), salary, status,
	to_char(signed_date, 'YYYY-MM-DD'), created_at, updated_at
`

func scanContract(row pgx.Row) (contract.Contract, error) {
	var c contract.Contract
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Type, &c.StartDate, &c.EndDate,
		&c.Salary, &c.Status, &c.SignedDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to scan contract: %w", err)
	}
	return c, nil
}

func (r *contractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO contracts (id, employee_id, type, start_date, end_date, salary, status, signed_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + contractColumns + `
	`

	return scanContract(q.QueryRow(ctx, query,
		c.ID, c.EmployeeID, c.Type, c.StartDate, c.EndDate, c.Salary, c.Status, c.SignedDate,
	))
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE id = $1
	`

	return scanContract(q.QueryRow(ctx, query, id))
}

func (r *contractRepository) List(ctx context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY signed_date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id string, status contract.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE contracts SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update contract status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}
