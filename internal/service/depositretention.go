package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DepositRetentionService decides how much of a held deposit is retained
// for reported damage.
type DepositRetentionService interface {
	Calculate(ctx context.Context, req dto.DepositRetentionRequest) (*dto.DepositRetentionResponse, error)
}

type depositRetentionService struct {
	ServiceParams
}

func NewDepositRetentionService(params ServiceParams) DepositRetentionService {
	return &depositRetentionService{ServiceParams: params}
}

func (s *depositRetentionService) Calculate(ctx context.Context, req dto.DepositRetentionRequest) (*dto.DepositRetentionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp := &dto.DepositRetentionResponse{
		RetentionAmount: decimal.Zero,
		RefundAmount:    req.DepositAmount,
		DamageLevel:     req.DamageLevel,
	}
	if req.DamageLevel == types.DamageLevelNone {
		return resp, nil
	}

	cfg, source, err := s.resolveConfig(ctx, req.BikeID, req.PricingClassID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	var rawRetention decimal.Decimal
	if cfg == nil {
		// no config at any level retains the whole deposit, the
		// fail-safe runs toward the operator
		rawRetention = req.DepositAmount
		source = dto.ConfigSourceDefaultFullRetention
		s.Logger.Warnw("no deposit retention config found, retaining full deposit",
			"bike_id", req.BikeID,
			"category_id", req.CategoryID,
			"damage_level", req.DamageLevel)
	} else {
		rawRetention = cfg.AmountFor(req.DamageLevel)
	}

	resp.RetentionAmount = decimal.Min(rawRetention, req.DepositAmount)
	resp.RefundAmount = req.DepositAmount.Sub(resp.RetentionAmount)
	resp.ConfigSource = lo.ToPtr(source)
	return resp, nil
}

// resolveConfig walks the retention hierarchy: bike, then pricing class,
// then category. A nil config with nil error means nothing matched.
func (s *depositRetentionService) resolveConfig(ctx context.Context, bikeID string, pricingClassID *string, categoryID string) (*depositconfig.DepositRetentionConfig, string, error) {
	cfg, err := s.DepositConfigRepo.GetByBikeID(ctx, bikeID)
	if err == nil {
		return cfg, "bike", nil
	}
	if !ierr.IsNotFound(err) {
		return nil, "", err
	}

	if pricingClassID != nil {
		cfg, err = s.DepositConfigRepo.GetByPricingClassID(ctx, *pricingClassID)
		if err == nil {
			return cfg, "pricing_class", nil
		}
		if !ierr.IsNotFound(err) {
			return nil, "", err
		}
	}

	cfg, err = s.DepositConfigRepo.GetByCategoryID(ctx, categoryID)
	if err == nil {
		return cfg, "category", nil
	}
	if !ierr.IsNotFound(err) {
		return nil, "", err
	}
	return nil, "", nil
}
