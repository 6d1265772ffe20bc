package discountrule

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DiscountRule is a conditional price reduction. Nil category/class filters
// match everything; the minimum-duration trigger is expressed either as a
// plain day count or as a reference to a duration definition, never both.
//
// Priority and IsCumulative drive the stacking policy: every cumulative rule
// applies, while only the single highest-priority non-cumulative rule does.
type DiscountRule struct {
	ID             string             `json:"id"`
	Label          string             `json:"label"`
	CategoryID     *string            `json:"category_id,omitempty"`
	PricingClassID *string            `json:"pricing_class_id,omitempty"`
	MinDays        *int               `json:"min_days,omitempty"`
	MinDurationID  *string            `json:"min_duration_id,omitempty"`
	Type           types.DiscountType `json:"type"`
	Value          decimal.Decimal    `json:"value"`
	IsCumulative   bool               `json:"is_cumulative"`
	Priority       int                `json:"priority"`
	types.BaseModel
}

func (r *DiscountRule) Validate() error {
	if r.Label == "" {
		return ierr.NewError("discount rule label is required").
			WithHint("Please provide a discount rule label").
			Mark(ierr.ErrValidation)
	}
	if !r.Type.Validate() {
		return ierr.NewError("invalid discount type").
			WithHint("Discount type must be fixed or percentage").
			Mark(ierr.ErrValidation)
	}
	if r.Value.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("discount value must be greater than zero").
			WithHint("Please provide a positive discount value").
			Mark(ierr.ErrValidation)
	}
	if r.Type == types.DiscountTypePercentage && r.Value.GreaterThan(oneHundred) {
		return ierr.NewError("percentage discount cannot exceed 100").
			WithHint("Please provide a percentage between 0 and 100").
			Mark(ierr.ErrValidation)
	}
	if (r.MinDays == nil) == (r.MinDurationID == nil) {
		return ierr.NewError("exactly one of min_days or min_duration_id must be set").
			WithHint("Please provide either a day threshold or a duration threshold").
			Mark(ierr.ErrValidation)
	}
	if r.MinDays != nil && *r.MinDays < 0 {
		return ierr.NewError("min_days cannot be negative").
			WithHint("Please provide a non-negative day threshold").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MatchesDimensions reports whether the rule's category and pricing-class
// filters accept the given dimensions. A nil filter matches everything.
func (r *DiscountRule) MatchesDimensions(categoryID, pricingClassID string) bool {
	if r.CategoryID != nil && *r.CategoryID != categoryID {
		return false
	}
	if r.PricingClassID != nil && *r.PricingClassID != pricingClassID {
		return false
	}
	return true
}

// CalculateDiscount computes the reduction for a given base price. The
// amount is always computed against the original base price, not a running
// discounted total. A fixed discount is capped at the base price so the
// reduction can never exceed what is being reduced.
func (r *DiscountRule) CalculateDiscount(basePrice decimal.Decimal) decimal.Decimal {
	switch r.Type {
	case types.DiscountTypeFixed:
		if r.Value.GreaterThan(basePrice) {
			return basePrice
		}
		return r.Value
	case types.DiscountTypePercentage:
		return basePrice.Mul(r.Value).Div(oneHundred)
	default:
		return decimal.Zero
	}
}
