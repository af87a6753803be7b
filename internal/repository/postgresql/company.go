package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oos-software/hr-backend-go/internal/domain/company"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

type companySettingsRepository struct {
	db *database.DB
}

func NewCompanySettingsRepository(db *database.DB) company.SettingsRepository {
	return &companySettingsRepository{db: db}
}

// Get returns the single settings row. The table holds at most one row.
func (r *companySettingsRepository) Get(ctx context.Context) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s company.Settings
	err := q.QueryRow(ctx, `
		SELECT id, name, tax_id, address, phone, email, logo_url,
		       representative_name, representative_position, created_at, updated_at
		FROM company_settings
		LIMIT 1
	`).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email, &s.LogoURL,
		&s.RepresentativeName, &s.RepresentativePosition, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Settings{}, company.ErrSettingsNotFound
		}
		return company.Settings{}, fmt.Errorf("failed to get company settings: %w", err)
	}
	return s, nil
}

func (r *companySettingsRepository) Upsert(ctx context.Context, s company.Settings) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && err != company.ErrSettingsNotFound {
		return company.Settings{}, err
	}

	if existing.ID == "" {
		s.ID = uuid.NewString()
		_, err = q.Exec(ctx, `
			INSERT INTO company_settings (id, name, tax_id, address, phone, email, logo_url,
			                              representative_name, representative_position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.ID, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.LogoURL,
			s.RepresentativeName, s.RepresentativePosition)
		if err != nil {
			return company.Settings{}, fmt.Errorf("failed to create company settings: %w", err)
		}
		return r.Get(ctx)
	}

	_, err = q.Exec(ctx, `
		UPDATE company_settings
		SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, logo_url = $7,
		    representative_name = $8, representative_position = $9, updated_at = NOW()
		WHERE id = $1
	`, existing.ID, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.LogoURL,
		s.RepresentativeName, s.RepresentativePosition)
	if err != nil {
		return company.Settings{}, fmt.Errorf("failed to update company settings: %w", err)
	}
	return r.Get(ctx)
}
