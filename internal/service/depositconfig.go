package service

import (
	"context"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/types"
)

// DepositConfigService administers deposit retention configuration.
type DepositConfigService interface {
	CreateConfig(ctx context.Context, req dto.CreateDepositConfigRequest) (*dto.DepositConfigResponse, error)
	GetConfig(ctx context.Context, id string) (*dto.DepositConfigResponse, error)
	ListConfigs(ctx context.Context) ([]*dto.DepositConfigResponse, error)
	ArchiveConfig(ctx context.Context, id string) error
}

type depositConfigService struct {
	ServiceParams
}

func NewDepositConfigService(params ServiceParams) DepositConfigService {
	return &depositConfigService{ServiceParams: params}
}

func (s *depositConfigService) CreateConfig(ctx context.Context, req dto.CreateDepositConfigRequest) (*dto.DepositConfigResponse, error) {
	c := req.ToDepositRetentionConfig(types.GetDefaultBaseModel(ctx))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.DepositConfigRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.NewDepositConfigResponse(c), nil
}

func (s *depositConfigService) GetConfig(ctx context.Context, id string) (*dto.DepositConfigResponse, error) {
	c, err := s.DepositConfigRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDepositConfigResponse(c), nil
}

func (s *depositConfigService) ListConfigs(ctx context.Context) ([]*dto.DepositConfigResponse, error) {
	configs, err := s.DepositConfigRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.DepositConfigResponse, 0, len(configs))
	for _, c := range configs {
		responses = append(responses, dto.NewDepositConfigResponse(c))
	}
	return responses, nil
}

func (s *depositConfigService) ArchiveConfig(ctx context.Context, id string) error {
	c, err := s.DepositConfigRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Status = types.StatusArchived
	return s.DepositConfigRepo.Update(ctx, c)
}
