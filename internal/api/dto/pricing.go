package dto

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/shopspring/decimal"
)

// CalculatePricingRequest asks for a price quote on one
// (category, pricing class, duration) triple. CustomDays overrides the
// duration's native day count and is mandatory for custom durations.
type CalculatePricingRequest struct {
	CategoryID     string           `json:"category_id" validate:"required"`
	PricingClassID string           `json:"pricing_class_id" validate:"required"`
	DurationID     string           `json:"duration_id" validate:"required"`
	CustomDays     *decimal.Decimal `json:"custom_days,omitempty"`
}

func (r *CalculatePricingRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CustomDays != nil && r.CustomDays.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("custom days must be greater than zero").
			WithHint("Please provide a positive number of days").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AppliedDiscount is one discount rule's contribution to a quote. Amount is
// rounded to 2 decimals for display; the quote arithmetic itself is not
// pre-rounded.
type AppliedDiscount struct {
	RuleID string             `json:"rule_id"`
	Label  string             `json:"label"`
	Type   types.DiscountType `json:"type"`
	Value  decimal.Decimal    `json:"value"`
	Amount decimal.Decimal    `json:"amount"`
}

// PricingCalculationResponse is the full price breakdown for a quote.
type PricingCalculationResponse struct {
	Days                decimal.Decimal   `json:"days"`
	PricePerDay         decimal.Decimal   `json:"price_per_day"`
	BasePrice           decimal.Decimal   `json:"base_price"`
	DiscountsApplied    []AppliedDiscount `json:"discounts_applied"`
	TotalDiscountAmount decimal.Decimal   `json:"total_discount_amount"`
	FinalPrice          decimal.Decimal   `json:"final_price"`
}
