package rate

import "context"

// Repository provides access to pricing rates. GetByDimensions returns only
// published rates and fails with a not-found error when the exact triple has
// no active rate.
type Repository interface {
	Create(ctx context.Context, r *PricingRate) error
	Get(ctx context.Context, id string) (*PricingRate, error)
	GetByDimensions(ctx context.Context, categoryID, pricingClassID, durationID string) (*PricingRate, error)
	List(ctx context.Context) ([]*PricingRate, error)
	Update(ctx context.Context, r *PricingRate) error
}
