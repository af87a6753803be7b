package company

import "context"

type SettingsService interface {
	// Get returns the company profile, or an empty profile when none was
	// saved yet; the payslip still prints with blank header fields.
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
