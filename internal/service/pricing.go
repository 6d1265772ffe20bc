package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/discountrule"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/shopspring/decimal"
)

const displayPrecision = 2

// PricingService produces price quotes for a (category, pricing class,
// duration) combination, including discount stacking.
type PricingService interface {
	Calculate(ctx context.Context, req dto.CalculatePricingRequest) (*dto.PricingCalculationResponse, error)
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

func (s *pricingService) Calculate(ctx context.Context, req dto.CalculatePricingRequest) (*dto.PricingCalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dur, err := s.DurationRepo.Get(ctx, req.DurationID)
	if err != nil {
		return nil, err
	}
	if dur.IsCustom && req.CustomDays == nil {
		return nil, ierr.NewError("custom duration requires a day count").
			WithHint("Please provide custom_days for custom durations").
			WithReportableDetails(map[string]any{"duration_id": dur.ID}).
			Mark(ierr.ErrValidation)
	}

	pricingRate, err := s.RateRepo.GetByDimensions(ctx, req.CategoryID, req.PricingClassID, req.DurationID)
	if err != nil {
		return nil, err
	}

	rentedDays := dur.DayEquivalent()
	if req.CustomDays != nil {
		rentedDays = *req.CustomDays
	}

	// The rate is per unit of the duration, never per raw day. A weekly
	// rate over 14 days is 2 units, not 14.
	unitDays := dur.UnitDays()
	units := rentedDays.Div(unitDays)
	basePrice := pricingRate.Price.Mul(units)
	pricePerDay := pricingRate.Price.Div(unitDays)

	rules, err := s.DiscountRuleRepo.FindApplicable(ctx, req.CategoryID, req.PricingClassID, rentedDays)
	if err != nil {
		return nil, err
	}

	applied, totalDiscount := stackDiscounts(rules, basePrice)

	finalPrice := basePrice.Sub(totalDiscount)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	s.Logger.Debugw("pricing calculated",
		"category_id", req.CategoryID,
		"pricing_class_id", req.PricingClassID,
		"duration_id", req.DurationID,
		"rented_days", rentedDays,
		"base_price", basePrice,
		"discount", totalDiscount,
		"final_price", finalPrice)

	return &dto.PricingCalculationResponse{
		Days:                rentedDays,
		PricePerDay:         pricePerDay,
		BasePrice:           basePrice,
		DiscountsApplied:    applied,
		TotalDiscountAmount: totalDiscount,
		FinalPrice:          finalPrice,
	}, nil
}

// stackDiscounts applies the stacking policy to rules sorted by priority
// descending: every cumulative rule contributes, plus at most one
// non-cumulative rule (the highest-priority one). Every amount is computed
// against the original base price, not a running total.
func stackDiscounts(rules []*discountrule.DiscountRule, basePrice decimal.Decimal) ([]dto.AppliedDiscount, decimal.Decimal) {
	applied := make([]dto.AppliedDiscount, 0, len(rules))
	total := decimal.Zero
	nonCumulativeUsed := false

	for _, rule := range rules {
		if !rule.IsCumulative {
			if nonCumulativeUsed {
				continue
			}
			nonCumulativeUsed = true
		}

		amount := rule.CalculateDiscount(basePrice)
		total = total.Add(amount)
		applied = append(applied, dto.AppliedDiscount{
			RuleID: rule.ID,
			Label:  rule.Label,
			Type:   rule.Type,
			Value:  rule.Value,
			Amount: amount.Round(displayPrecision),
		})
	}

	return applied, total
}
