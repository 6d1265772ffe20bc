package rate

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// PricingRate attaches a price to one (category, pricing class, duration)
// triple. The price is per duration unit, never per calendar day: a weekly
// rate of 100 covers the whole week.
type PricingRate struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"category_id"`
	PricingClassID string          `json:"pricing_class_id"`
	DurationID     string          `json:"duration_id"`
	Price          decimal.Decimal `json:"price"`
	types.BaseModel
}

func (r *PricingRate) Validate() error {
	if r.CategoryID == "" || r.PricingClassID == "" || r.DurationID == "" {
		return ierr.NewError("category, pricing class and duration are required").
			WithHint("Please provide all three rate dimensions").
			Mark(ierr.ErrValidation)
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("price must be greater than zero").
			WithHint("Please provide a positive price").
			Mark(ierr.ErrValidation)
	}
	return nil
}
