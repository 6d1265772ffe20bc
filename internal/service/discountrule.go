package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/types"
)

// DiscountRuleService administers discount rules.
type DiscountRuleService interface {
	CreateRule(ctx context.Context, req dto.CreateDiscountRuleRequest) (*dto.DiscountRuleResponse, error)
	GetRule(ctx context.Context, id string) (*dto.DiscountRuleResponse, error)
	ListRules(ctx context.Context) ([]*dto.DiscountRuleResponse, error)
	ArchiveRule(ctx context.Context, id string) error
}

type discountRuleService struct {
	ServiceParams
}

func NewDiscountRuleService(params ServiceParams) DiscountRuleService {
	return &discountRuleService{ServiceParams: params}
}

func (s *discountRuleService) CreateRule(ctx context.Context, req dto.CreateDiscountRuleRequest) (*dto.DiscountRuleResponse, error) {
	r := req.ToDiscountRule(types.GetDefaultBaseModel(ctx))
	if err := r.Validate(); err != nil {
		return nil, err
	}

	// a duration-based threshold must point at a known duration
	if r.MinDurationID != nil {
		if _, err := s.DurationRepo.Get(ctx, *r.MinDurationID); err != nil {
			return nil, err
		}
	}

	if err := s.DiscountRuleRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return dto.NewDiscountRuleResponse(r), nil
}

func (s *discountRuleService) GetRule(ctx context.Context, id string) (*dto.DiscountRuleResponse, error) {
	r, err := s.DiscountRuleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDiscountRuleResponse(r), nil
}

func (s *discountRuleService) ListRules(ctx context.Context) ([]*dto.DiscountRuleResponse, error) {
	rules, err := s.DiscountRuleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.DiscountRuleResponse, 0, len(rules))
	for _, r := range rules {
		responses = append(responses, dto.NewDiscountRuleResponse(r))
	}
	return responses, nil
}

func (s *discountRuleService) ArchiveRule(ctx context.Context, id string) error {
	r, err := s.DiscountRuleRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	r.Status = types.StatusArchived
	return s.DiscountRuleRepo.Update(ctx, r)
}
