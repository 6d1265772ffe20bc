package repository

import (
	"context"

	"github.com/fbo94/veloflott/internal/domain/settings"
)

type settingsRepository struct {
	store *InMemoryStore[settings.RentalSettings]
}

func NewInMemorySettingsRepository() settings.Repository {
	return &settingsRepository{store: NewInMemoryStore[settings.RentalSettings]()}
}

// Upsert stores the row keyed by its scope, one row per scope.
func (r *settingsRepository) Upsert(ctx context.Context, s *settings.RentalSettings) error {
	r.store.Upsert(ctx, settings.ScopeKey(s.Tenant, s.Site), s)
	return nil
}

func (r *settingsRepository) GetByScope(ctx context.Context, tenantID, siteID *string) (*settings.RentalSettings, error) {
	return r.store.Get(ctx, settings.ScopeKey(tenantID, siteID))
}

func (r *settingsRepository) List(ctx context.Context) ([]*settings.RentalSettings, error) {
	return r.store.List(ctx, nil)
}
