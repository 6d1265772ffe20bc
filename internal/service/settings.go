package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/cache"
	"github.com/fbo94/veloflott/internal/domain/settings"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
)

// SettingsService resolves and administers per-scope rental settings.
type SettingsService interface {
	// GetEffectiveSettings resolves the settings for a scope through the
	// site > tenant > application-default fallback chain. It never fails:
	// when nothing is persisted it synthesizes the in-memory default.
	GetEffectiveSettings(ctx context.Context, tenantID, siteID *string) (*settings.RentalSettings, error)

	UpsertSettings(ctx context.Context, req dto.UpsertRentalSettingsRequest) (*dto.RentalSettingsResponse, error)
	ListSettings(ctx context.Context) ([]*dto.RentalSettingsResponse, error)
}

type settingsService struct {
	ServiceParams
}

func NewSettingsService(params ServiceParams) SettingsService {
	return &settingsService{ServiceParams: params}
}

func (s *settingsService) GetEffectiveSettings(ctx context.Context, tenantID, siteID *string) (*settings.RentalSettings, error) {
	cacheKey := cache.GenerateKey(cache.PrefixRentalSettings, settings.ScopeKey(tenantID, siteID))
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if cfg, ok := cached.(*settings.RentalSettings); ok {
			return cfg, nil
		}
	}

	resolved := s.resolve(ctx, tenantID, siteID)
	s.Cache.Set(ctx, cacheKey, resolved, cache.DefaultExpiration)
	return resolved, nil
}

// resolve walks the scope chain, first persisted row wins.
func (s *settingsService) resolve(ctx context.Context, tenantID, siteID *string) *settings.RentalSettings {
	scopes := [][2]*string{}
	if tenantID != nil && siteID != nil {
		scopes = append(scopes, [2]*string{tenantID, siteID})
	}
	if tenantID != nil {
		scopes = append(scopes, [2]*string{tenantID, nil})
	}
	scopes = append(scopes, [2]*string{nil, nil})

	for _, scope := range scopes {
		row, err := s.SettingsRepo.GetByScope(ctx, scope[0], scope[1])
		if err == nil {
			return row
		}
		if !ierr.IsNotFound(err) {
			s.Logger.Errorw("settings lookup failed, falling back",
				"error", err, "scope", settings.ScopeKey(scope[0], scope[1]))
		}
	}

	return settings.DefaultSettings()
}

func (s *settingsService) UpsertSettings(ctx context.Context, req dto.UpsertRentalSettingsRequest) (*dto.RentalSettingsResponse, error) {
	row := req.ToRentalSettings(types.GetDefaultBaseModel(ctx))
	if err := row.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.SettingsRepo.GetByScope(ctx, row.Tenant, row.Site); err == nil {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		row.CreatedBy = existing.CreatedBy
	}

	if err := s.SettingsRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}

	// drop every cached scope resolution; fallback chains may change
	s.Cache.DeleteByPrefix(ctx, cache.PrefixRentalSettings)

	return dto.NewRentalSettingsResponse(row), nil
}

func (s *settingsService) ListSettings(ctx context.Context) ([]*dto.RentalSettingsResponse, error) {
	rows, err := s.SettingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RentalSettingsResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.NewRentalSettingsResponse(row))
	}
	return responses, nil
}
