package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/rate"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/shopspring/decimal"
)

// CreatePricingRateRequest attaches a per-unit price to a rate triple.
type CreatePricingRateRequest struct {
	CategoryID     string          `json:"category_id" validate:"required"`
	PricingClassID string          `json:"pricing_class_id" validate:"required"`
	DurationID     string          `json:"duration_id" validate:"required"`
	Price          decimal.Decimal `json:"price" validate:"required"`
}

func (r *CreatePricingRateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("price must be greater than zero").
			WithHint("Please provide a positive price").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreatePricingRateRequest) ToPricingRate(base types.BaseModel) *rate.PricingRate {
	return &rate.PricingRate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICING_RATE),
		CategoryID:     r.CategoryID,
		PricingClassID: r.PricingClassID,
		DurationID:     r.DurationID,
		Price:          r.Price,
		BaseModel:      base,
	}
}

// PricingRateResponse mirrors a pricing rate.
type PricingRateResponse struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"category_id"`
	PricingClassID string          `json:"pricing_class_id"`
	DurationID     string          `json:"duration_id"`
	Price          decimal.Decimal `json:"price"`
	Status         types.Status    `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewPricingRateResponse(r *rate.PricingRate) *PricingRateResponse {
	return &PricingRateResponse{
		ID:             r.ID,
		CategoryID:     r.CategoryID,
		PricingClassID: r.PricingClassID,
		DurationID:     r.DurationID,
		Price:          r.Price,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
