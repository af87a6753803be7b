package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `
	id, title, amount, to_char(date, 'YYYY-MM-DD'), category, status,
	employee_id, notes, created_at, updated_at
`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.Title, &inv.Amount, &inv.Date, &inv.Category, &inv.Status,
		&inv.EmployeeID, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to scan invoice: %w", err)
	}
	return inv, nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	query := `
		INSERT INTO invoices (id, title, amount, date, category, status, employee_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + invoiceColumns + `
	`

	return scanInvoice(q.QueryRow(ctx, query,
		inv.ID, inv.Title, inv.Amount, inv.Date, inv.Category, inv.Status, inv.EmployeeID, inv.Notes,
	))
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1
	`

	return scanInvoice(q.QueryRow(ctx, query, id))
}

func (r *invoiceRepository) List(ctx context.Context, filter invoice.ListFilter) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) Update(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET title = $2, amount = $3, date = $4, category = $5, status = $6,
			employee_id = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + invoiceColumns + `
	`

	return scanInvoice(q.QueryRow(ctx, query,
		inv.ID, inv.Title, inv.Amount, inv.Date, inv.Category, inv.Status, inv.EmployeeID, inv.Notes,
	))
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status invoice.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE invoices SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}
