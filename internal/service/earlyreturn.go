package service

import (
	"context"
	"time"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/settings"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// EarlyReturnService computes the fee and refund split for a return before
// the expected date.
type EarlyReturnService interface {
	Calculate(ctx context.Context, req dto.EarlyReturnRequest) (*dto.EarlyReturnResponse, error)
}

type earlyReturnService struct {
	ServiceParams
	settingsService SettingsService
}

func NewEarlyReturnService(params ServiceParams, settingsService SettingsService) EarlyReturnService {
	return &earlyReturnService{ServiceParams: params, settingsService: settingsService}
}

func (s *earlyReturnService) Calculate(ctx context.Context, req dto.EarlyReturnRequest) (*dto.EarlyReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.settingsService.GetEffectiveSettings(ctx, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}

	return computeEarlyReturn(req.StartDate, req.ExpectedReturnDate, req.ActualReturnDate, req.TotalAmount, cfg), nil
}

// computeEarlyReturn prorates the unused portion of the rental linearly over
// whole days. The fee never exceeds the unused amount, so fee plus refund
// always equals the unused amount.
func computeEarlyReturn(start, expected, actual time.Time, totalAmount decimal.Decimal, cfg *settings.RentalSettings) *dto.EarlyReturnResponse {
	resp := &dto.EarlyReturnResponse{
		UnusedAmount: decimal.Zero,
		FeeAmount:    decimal.Zero,
		RefundAmount: decimal.Zero,
		FeeType:      types.EarlyReturnFeeTypeNone,
		IsEnabled:    cfg.EarlyReturnEnabled,
	}

	totalDays := wholeDaysBetween(start, expected)
	if totalDays < 1 {
		totalDays = 1
	}
	usedDays := wholeDaysBetween(start, actual)
	if usedDays < 0 {
		usedDays = 0
	}
	resp.UnusedDays = totalDays - usedDays
	if resp.UnusedDays <= 0 {
		resp.UnusedDays = 0
		return resp
	}

	dailyRate := totalAmount.Div(decimal.NewFromInt(int64(totalDays)))
	resp.UnusedAmount = dailyRate.Mul(decimal.NewFromInt(int64(resp.UnusedDays)))

	if !cfg.EarlyReturnEnabled {
		resp.RefundAmount = resp.UnusedAmount
		return resp
	}

	resp.FeeType = cfg.EarlyReturnFeeType
	switch cfg.EarlyReturnFeeType {
	case types.EarlyReturnFeeTypePercentage:
		if cfg.EarlyReturnFeePercentage != nil {
			resp.FeeAmount = resp.UnusedAmount.Mul(*cfg.EarlyReturnFeePercentage).Div(decimal.NewFromInt(100))
		}
	case types.EarlyReturnFeeTypeFixed:
		if cfg.EarlyReturnFeeFixed != nil {
			resp.FeeAmount = *cfg.EarlyReturnFeeFixed
		}
	}

	if resp.FeeAmount.GreaterThan(resp.UnusedAmount) {
		resp.FeeAmount = resp.UnusedAmount
	}
	resp.RefundAmount = resp.UnusedAmount.Sub(resp.FeeAmount)
	return resp
}

// wholeDaysBetween truncates to whole days, partial days do not count.
func wholeDaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}
