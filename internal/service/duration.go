package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/types"
)

// DurationService administers the duration catalog.
type DurationService interface {
	CreateDuration(ctx context.Context, req dto.CreateDurationRequest) (*dto.DurationResponse, error)
	GetDuration(ctx context.Context, id string) (*dto.DurationResponse, error)
	ListDurations(ctx context.Context) ([]*dto.DurationResponse, error)
	ArchiveDuration(ctx context.Context, id string) error
}

type durationService struct {
	ServiceParams
}

func NewDurationService(params ServiceParams) DurationService {
	return &durationService{ServiceParams: params}
}

func (s *durationService) CreateDuration(ctx context.Context, req dto.CreateDurationRequest) (*dto.DurationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := req.ToDurationDefinition(types.GetDefaultBaseModel(ctx))
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := s.DurationRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return dto.NewDurationResponse(d), nil
}

func (s *durationService) GetDuration(ctx context.Context, id string) (*dto.DurationResponse, error) {
	d, err := s.DurationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDurationResponse(d), nil
}

func (s *durationService) ListDurations(ctx context.Context) ([]*dto.DurationResponse, error) {
	durations, err := s.DurationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.DurationResponse, 0, len(durations))
	for _, d := range durations {
		responses = append(responses, dto.NewDurationResponse(d))
	}
	return responses, nil
}

func (s *durationService) ArchiveDuration(ctx context.Context, id string) error {
	d, err := s.DurationRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	d.Status = types.StatusArchived
	return s.DurationRepo.Update(ctx, d)
}
