package testutil

import (
	"context"
	"time"

	"github.com/fbo94/veloflott/internal/cache"
	"github.com/fbo94/veloflott/internal/config"
	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/domain/discountrule"
	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/domain/rate"
	"github.com/fbo94/veloflott/internal/domain/rental"
	"github.com/fbo94/veloflott/internal/domain/settings"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/repository"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	DurationRepo      duration.Repository
	RateRepo          rate.Repository
	DiscountRuleRepo  discountrule.Repository
	SettingsRepo      settings.Repository
	DepositConfigRepo depositconfig.Repository
	RentalRepo        rental.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()

	var err error
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	durationRepo := repository.NewInMemoryDurationRepository()
	s.stores = Stores{
		DurationRepo:      durationRepo,
		RateRepo:          repository.NewInMemoryRateRepository(),
		DiscountRuleRepo:  repository.NewInMemoryDiscountRuleRepository(durationRepo),
		SettingsRepo:      repository.NewInMemorySettingsRepository(),
		DepositConfigRepo: repository.NewInMemoryDepositConfigRepository(),
		RentalRepo:        repository.NewInMemoryRentalRepository(),
	}
	s.cache = cache.NewInMemoryCache(s.config)
}

// GetCache returns the per-test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time in UTC
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
