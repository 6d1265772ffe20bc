package discountrule

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository provides access to discount rules. FindApplicable returns the
// published rules whose dimension filters accept (categoryID,
// pricingClassID) and whose minimum-duration trigger is satisfied by
// rentedDays, resolving duration-based thresholds to day equivalents.
type Repository interface {
	Create(ctx context.Context, r *DiscountRule) error
	Get(ctx context.Context, id string) (*DiscountRule, error)
	FindApplicable(ctx context.Context, categoryID, pricingClassID string, rentedDays decimal.Decimal) ([]*DiscountRule, error)
	List(ctx context.Context) ([]*DiscountRule, error)
	Update(ctx context.Context, r *DiscountRule) error
}
