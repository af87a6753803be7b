package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/oos-software/hr-backend-go/internal/domain/company"
)

type SettingsServiceImpl struct {
	company.SettingsRepository
}

func NewSettingsService(settingsRepository company.SettingsRepository) company.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepository}
}

// Get implements company.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (company.SettingsResponse, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, company.ErrSettingsNotFound) {
			return company.SettingsResponse{}, nil
		}
		return company.SettingsResponse{}, fmt.Errorf("failed to get company settings: %w", err)
	}
	return toResponse(settings), nil
}

// Update implements company.SettingsService. Only provided fields change;
// the first update creates the row.
func (s *SettingsServiceImpl) Update(ctx context.Context, req company.UpdateSettingsRequest) (company.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return company.SettingsResponse{}, err
	}

	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrSettingsNotFound) {
		return company.SettingsResponse{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.TaxID != nil {
		settings.TaxID = *req.TaxID
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if req.RepresentativeName != nil {
		settings.RepresentativeName = *req.RepresentativeName
	}
	if req.RepresentativePosition != nil {
		settings.RepresentativePosition = *req.RepresentativePosition
	}

	saved, err := s.SettingsRepository.Upsert(ctx, settings)
	if err != nil {
		return company.SettingsResponse{}, fmt.Errorf("failed to save company settings: %w", err)
	}
	return toResponse(saved), nil
}

func toResponse(s company.Settings) company.SettingsResponse {
	return company.SettingsResponse{
		Name:                   s.Name,
		TaxID:                  s.TaxID,
		Address:                s.Address,
		Phone:                  s.Phone,
		Email:                  s.Email,
		LogoURL:                s.LogoURL,
		RepresentativeName:     s.RepresentativeName,
		RepresentativePosition: s.RepresentativePosition,
	}
}
