package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
)

// PricingRateService administers the rate card.
type PricingRateService interface {
	CreateRate(ctx context.Context, req dto.CreatePricingRateRequest) (*dto.PricingRateResponse, error)
	GetRate(ctx context.Context, id string) (*dto.PricingRateResponse, error)
	ListRates(ctx context.Context) ([]*dto.PricingRateResponse, error)
	ArchiveRate(ctx context.Context, id string) error
}

type pricingRateService struct {
	ServiceParams
}

func NewPricingRateService(params ServiceParams) PricingRateService {
	return &pricingRateService{ServiceParams: params}
}

func (s *pricingRateService) CreateRate(ctx context.Context, req dto.CreatePricingRateRequest) (*dto.PricingRateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// the duration must exist, rates reference it by id
	if _, err := s.DurationRepo.Get(ctx, req.DurationID); err != nil {
		return nil, err
	}

	// one published rate per (category, class, duration) triple, otherwise
	// quote resolution would pick an arbitrary one
	existing, err := s.RateRepo.GetByDimensions(ctx, req.CategoryID, req.PricingClassID, req.DurationID)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("a rate already exists for this category, pricing class and duration").
			WithHint("Archive the existing rate before creating a new one").
			WithReportableDetails(map[string]any{
				"existing_rate_id": existing.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	r := req.ToPricingRate(types.GetDefaultBaseModel(ctx))
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.RateRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return dto.NewPricingRateResponse(r), nil
}

func (s *pricingRateService) GetRate(ctx context.Context, id string) (*dto.PricingRateResponse, error) {
	r, err := s.RateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPricingRateResponse(r), nil
}

func (s *pricingRateService) ListRates(ctx context.Context) ([]*dto.PricingRateResponse, error) {
	rates, err := s.RateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.PricingRateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, dto.NewPricingRateResponse(r))
	}
	return responses, nil
}

func (s *pricingRateService) ArchiveRate(ctx context.Context, id string) error {
	r, err := s.RateRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	r.Status = types.StatusArchived
	return s.RateRepo.Update(ctx, r)
}
