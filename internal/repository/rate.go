package repository

import (
	"context"

	"github.com/fbo94/veloflott/internal/domain/rate"
	"github.com/fbo94/veloflott/internal/types"
)

type rateRepository struct {
	store *InMemoryStore[rate.PricingRate]
}

func NewInMemoryRateRepository() rate.Repository {
	return &rateRepository{store: NewInMemoryStore[rate.PricingRate]()}
}

func (r *rateRepository) Create(ctx context.Context, pr *rate.PricingRate) error {
	return r.store.Create(ctx, pr.ID, pr)
}

func (r *rateRepository) Get(ctx context.Context, id string) (*rate.PricingRate, error) {
	return r.store.Get(ctx, id)
}

// GetByDimensions resolves the published rate for the exact triple. An
// archived rate is treated as absent.
func (r *rateRepository) GetByDimensions(ctx context.Context, categoryID, pricingClassID, durationID string) (*rate.PricingRate, error) {
	return r.store.FindOne(ctx, func(pr *rate.PricingRate) bool {
		return pr.Status == types.StatusPublished &&
			pr.CategoryID == categoryID &&
			pr.PricingClassID == pricingClassID &&
			pr.DurationID == durationID
	})
}

func (r *rateRepository) List(ctx context.Context) ([]*rate.PricingRate, error) {
	return r.store.List(ctx, func(pr *rate.PricingRate) bool {
		return pr.Status == types.StatusPublished
	})
}

func (r *rateRepository) Update(ctx context.Context, pr *rate.PricingRate) error {
	return r.store.Update(ctx, pr.ID, pr)
}
