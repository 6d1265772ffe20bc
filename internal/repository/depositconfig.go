package repository

import (
	"context"

	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/types"
)

type depositConfigRepository struct {
	store *InMemoryStore[depositconfig.DepositRetentionConfig]
}

func NewInMemoryDepositConfigRepository() depositconfig.Repository {
	return &depositConfigRepository{store: NewInMemoryStore[depositconfig.DepositRetentionConfig]()}
}

func (r *depositConfigRepository) Create(ctx context.Context, c *depositconfig.DepositRetentionConfig) error {
	return r.store.Create(ctx, c.ID, c)
}

func (r *depositConfigRepository) Get(ctx context.Context, id string) (*depositconfig.DepositRetentionConfig, error) {
	return r.store.Get(ctx, id)
}

func (r *depositConfigRepository) GetByBikeID(ctx context.Context, bikeID string) (*depositconfig.DepositRetentionConfig, error) {
	return r.store.FindOne(ctx, func(c *depositconfig.DepositRetentionConfig) bool {
		return c.Status == types.StatusPublished && c.BikeID != nil && *c.BikeID == bikeID
	})
}

func (r *depositConfigRepository) GetByPricingClassID(ctx context.Context, pricingClassID string) (*depositconfig.DepositRetentionConfig, error) {
	return r.store.FindOne(ctx, func(c *depositconfig.DepositRetentionConfig) bool {
		return c.Status == types.StatusPublished && c.PricingClassID != nil && *c.PricingClassID == pricingClassID
	})
}

func (r *depositConfigRepository) GetByCategoryID(ctx context.Context, categoryID string) (*depositconfig.DepositRetentionConfig, error) {
	return r.store.FindOne(ctx, func(c *depositconfig.DepositRetentionConfig) bool {
		return c.Status == types.StatusPublished && c.CategoryID != nil && *c.CategoryID == categoryID
	})
}

func (r *depositConfigRepository) List(ctx context.Context) ([]*depositconfig.DepositRetentionConfig, error) {
	return r.store.List(ctx, func(c *depositconfig.DepositRetentionConfig) bool {
		return c.Status == types.StatusPublished
	})
}

func (r *depositConfigRepository) Update(ctx context.Context, c *depositconfig.DepositRetentionConfig) error {
	return r.store.Update(ctx, c.ID, c)
}
