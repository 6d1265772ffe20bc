package service

import (
	"github.com/fbo94/veloflott/internal/cache"
	"github.com/fbo94/veloflott/internal/config"
	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/domain/discountrule"
	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/domain/rate"
	"github.com/fbo94/veloflott/internal/domain/rental"
	"github.com/fbo94/veloflott/internal/domain/settings"
	"github.com/fbo94/veloflott/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	DurationRepo      duration.Repository
	RateRepo          rate.Repository
	DiscountRuleRepo  discountrule.Repository
	SettingsRepo      settings.Repository
	DepositConfigRepo depositconfig.Repository
	RentalRepo        rental.Repository
}

// NewServiceParams creates a new ServiceParams instance for DI containers
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	durationRepo duration.Repository,
	rateRepo rate.Repository,
	discountRuleRepo discountrule.Repository,
	settingsRepo settings.Repository,
	depositConfigRepo depositconfig.Repository,
	rentalRepo rental.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:            logger,
		Config:            config,
		Cache:             cache,
		DurationRepo:      durationRepo,
		RateRepo:          rateRepo,
		DiscountRuleRepo:  discountRuleRepo,
		SettingsRepo:      settingsRepo,
		DepositConfigRepo: depositConfigRepo,
		RentalRepo:        rentalRepo,
	}
}
