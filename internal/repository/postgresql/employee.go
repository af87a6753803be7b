package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, phone, email, position, to_char(date_applied, 'YYYY-MM-DD'), status,
	to_char(dob, 'YYYY-MM-DD'), experience, cv_file_name, cv_file_url,
	bank_name, bank_account_number, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Phone, &e.Email, &e.Position, &e.DateApplied, &e.Status,
		&e.DOB, &e.Experience, &e.CVFileName, &e.CVFileURL, &e.BankName,
		&e.BankAccountNumber, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, name, phone, email, position, date_applied, status, dob,
			experience, cv_file_name, cv_file_url, bank_name, bank_account_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + employeeColumns + `
	`

	return scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.Name, e.Phone, e.Email, e.Position, e.DateApplied, e.Status,
		e.DOB, e.Experience, e.CVFileName, e.CVFileURL, e.BankName, e.BankAccountNumber,
	))
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) List(ctx context.Context, status *employee.Status) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
	`
	var args []interface{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) GetHired(ctx context.Context) ([]employee.Employee, error) {
	hired := employee.StatusHired
	return r.List(ctx, &hired)
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, phone = $3, email = $4, position = $5, dob = $6,
			experience = $7, cv_file_name = $8, cv_file_url = $9, bank_name = $10,
			bank_account_number = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns + `
	`

	return scanEmployee(q.QueryRow(ctx, query,
		e.ID, e.Name, e.Phone, e.Email, e.Position, e.DOB, e.Experience,
		e.CVFileName, e.CVFileURL, e.BankName, e.BankAccountNumber,
	))
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
