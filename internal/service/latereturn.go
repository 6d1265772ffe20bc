package service

import (
	"context"
	"time"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// LateReturnService computes late fees for returns past the expected date.
type LateReturnService interface {
	Calculate(ctx context.Context, req dto.LateReturnRequest) (*dto.LateReturnResponse, error)
}

type lateReturnService struct {
	ServiceParams
	settingsService SettingsService
}

func NewLateReturnService(params ServiceParams, settingsService SettingsService) LateReturnService {
	return &lateReturnService{ServiceParams: params, settingsService: settingsService}
}

func (s *lateReturnService) Calculate(ctx context.Context, req dto.LateReturnRequest) (*dto.LateReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.settingsService.GetEffectiveSettings(ctx, req.TenantID, req.SiteID)
	if err != nil {
		return nil, err
	}

	return computeLateFee(req.ExpectedReturnDate, req.ActualReturnDate, cfg), nil
}

// computeLateFee is shared with rental check-out. The fee regime switches
// from hourly to daily at 24 billable hours, and the tolerance window is
// deducted before any billing starts.
func computeLateFee(expected, actual time.Time, cfg *settings.RentalSettings) *dto.LateReturnResponse {
	resp := &dto.LateReturnResponse{
		FeeAmount:        decimal.Zero,
		ToleranceMinutes: cfg.LateToleranceMinutes,
	}

	if !actual.After(expected) {
		return resp
	}

	resp.IsLate = true
	resp.MinutesLate = int(actual.Sub(expected) / time.Minute)

	if resp.MinutesLate <= cfg.LateToleranceMinutes {
		resp.WithinTolerance = true
		return resp
	}

	billableMinutes := resp.MinutesLate - cfg.LateToleranceMinutes
	resp.HoursLate = ceilDiv(billableMinutes, 60)
	resp.DaysLate = ceilDiv(resp.HoursLate, 24)

	if resp.HoursLate < 24 {
		resp.FeeAmount = cfg.HourlyLateRate.Mul(decimal.NewFromInt(int64(resp.HoursLate)))
	} else {
		resp.FeeAmount = cfg.DailyLateRate.Mul(decimal.NewFromInt(int64(resp.DaysLate)))
	}
	return resp
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
