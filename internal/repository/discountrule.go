package repository

import (
	"context"
	"sort"

	"github.com/fbo94/veloflott/internal/domain/discountrule"
	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

type discountRuleRepository struct {
	store        *InMemoryStore[discountrule.DiscountRule]
	durationRepo duration.Repository
}

// NewInMemoryDiscountRuleRepository needs the duration repository to resolve
// duration-based minimum thresholds into day counts.
func NewInMemoryDiscountRuleRepository(durationRepo duration.Repository) discountrule.Repository {
	return &discountRuleRepository{
		store:        NewInMemoryStore[discountrule.DiscountRule](),
		durationRepo: durationRepo,
	}
}

func (r *discountRuleRepository) Create(ctx context.Context, rule *discountrule.DiscountRule) error {
	return r.store.Create(ctx, rule.ID, rule)
}

func (r *discountRuleRepository) Get(ctx context.Context, id string) (*discountrule.DiscountRule, error) {
	return r.store.Get(ctx, id)
}

// FindApplicable returns every published rule whose dimension filters match
// and whose minimum-duration threshold is met, sorted by priority
// descending as the stacking policy expects.
func (r *discountRuleRepository) FindApplicable(ctx context.Context, categoryID, pricingClassID string, rentedDays decimal.Decimal) ([]*discountrule.DiscountRule, error) {
	candidates, err := r.store.List(ctx, func(rule *discountrule.DiscountRule) bool {
		return rule.Status == types.StatusPublished &&
			rule.MatchesDimensions(categoryID, pricingClassID)
	})
	if err != nil {
		return nil, err
	}

	applicable := make([]*discountrule.DiscountRule, 0, len(candidates))
	for _, rule := range candidates {
		threshold, err := r.minimumDays(ctx, rule)
		if err != nil {
			return nil, err
		}
		if rentedDays.GreaterThanOrEqual(threshold) {
			applicable = append(applicable, rule)
		}
	}

	sort.Slice(applicable, func(i, j int) bool {
		return applicable[i].Priority > applicable[j].Priority
	})
	return applicable, nil
}

func (r *discountRuleRepository) minimumDays(ctx context.Context, rule *discountrule.DiscountRule) (decimal.Decimal, error) {
	if rule.MinDays != nil {
		return decimal.NewFromInt(int64(*rule.MinDays)), nil
	}
	if rule.MinDurationID != nil {
		d, err := r.durationRepo.Get(ctx, *rule.MinDurationID)
		if err != nil {
			return decimal.Zero, err
		}
		return d.DayEquivalent(), nil
	}
	return decimal.Zero, nil
}

func (r *discountRuleRepository) List(ctx context.Context) ([]*discountrule.DiscountRule, error) {
	return r.store.List(ctx, func(rule *discountrule.DiscountRule) bool {
		return rule.Status == types.StatusPublished
	})
}

func (r *discountRuleRepository) Update(ctx context.Context, rule *discountrule.DiscountRule) error {
	return r.store.Update(ctx, rule.ID, rule)
}
