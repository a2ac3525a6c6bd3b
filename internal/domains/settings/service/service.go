package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"tourcrm/infras/otel"
	orgDto "tourcrm/internal/domains/organization/model/dto"
	"tourcrm/internal/domains/settings/model/dto"
	"tourcrm/internal/domains/settings/repository"
	"tourcrm/internal/schema"
	"tourcrm/shared/constant"

	"github.com/rs/zerolog/log"
)

type Settings interface {
	GetPreferences(ctx context.Context) (dto.PreferencesResponse, error)
	UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest) error
	CacheOrganization(ctx context.Context, org orgDto.OrganizationResponse) error
	CachedOrganization(ctx context.Context) (orgDto.OrganizationResponse, bool)
}

type serviceImpl struct {
	prefs repository.Preferences
	otel  otel.Otel
}

func New(prefs repository.Preferences, otel otel.Otel) Settings {
	return &serviceImpl{
		prefs: prefs,
		otel:  otel,
	}
}

func (s *serviceImpl) GetPreferences(ctx context.Context) (res dto.PreferencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPreferences")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.PreferencesResponse{
		Theme:    dto.DefaultTheme,
		Language: dto.DefaultLanguage,
		Currency: schema.DefaultCurrency,
	}

	for key, target := range map[string]*string{
		constant.PrefKeyTheme:    &res.Theme,
		constant.PrefKeyLanguage: &res.Language,
		constant.PrefKeyCurrency: &res.Currency,
	} {
		value, found, err := s.prefs.Get(ctx, key)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to read preference")

			return res, fmt.Errorf("failed to read preference: %w", err)
		}

		if found {
			*target = value
		}
	}

	return res, nil
}

func (s *serviceImpl) UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePreferences")
	defer scope.End()
	defer scope.TraceIfError(err)

	for key, value := range map[string]string{
		constant.PrefKeyTheme:    req.Theme,
		constant.PrefKeyLanguage: req.Language,
		constant.PrefKeyCurrency: req.Currency,
	} {
		if value == "" {
			continue
		}

		if err = s.prefs.Set(ctx, key, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save preference")

			return fmt.Errorf("failed to save preference: %w", err)
		}
	}

	return nil
}

// CacheOrganization stores a snapshot of the organization so the dashboard
// shell can paint branding before the first round trip completes.
func (s *serviceImpl) CacheOrganization(ctx context.Context, org orgDto.OrganizationResponse) error {
	encoded, err := json.Marshal(org)
	if err != nil {
		return fmt.Errorf("failed to encode organization snapshot: %w", err)
	}

	if err := s.prefs.Set(ctx, constant.PrefKeyOrganization, string(encoded)); err != nil {
		return fmt.Errorf("failed to save organization snapshot: %w", err)
	}

	return nil
}

// CachedOrganization returns the stored snapshot. A corrupt or missing
// snapshot is absence, never an error.
func (s *serviceImpl) CachedOrganization(ctx context.Context) (res orgDto.OrganizationResponse, found bool) {
	raw, found, err := s.prefs.Get(ctx, constant.PrefKeyOrganization)
	if err != nil || !found {
		if err != nil {
			log.Error().Err(err).Msg("failed to read organization snapshot")
		}

		return res, false
	}

	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable organization snapshot")

		return orgDto.OrganizationResponse{}, false
	}

	return res, true
}
