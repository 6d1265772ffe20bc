package main

import (
	"context"
	"net/http"
	"time"

	"github.com/fbo94/veloflott/internal/api"
	v1 "github.com/fbo94/veloflott/internal/api/v1"
	"github.com/fbo94/veloflott/internal/cache"
	"github.com/fbo94/veloflott/internal/config"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/repository"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Repositories
			repository.NewInMemoryDurationRepository,
			repository.NewInMemoryRateRepository,
			repository.NewInMemoryDiscountRuleRepository,
			repository.NewInMemorySettingsRepository,
			repository.NewInMemoryDepositConfigRepository,
			repository.NewInMemoryRentalRepository,

			// Service layer
			service.NewServiceParams,
			service.NewSettingsService,
			service.NewPricingService,
			service.NewLateReturnService,
			service.NewEarlyReturnService,
			service.NewDepositRetentionService,
			service.NewRentalService,
			service.NewDurationService,
			service.NewPricingRateService,
			service.NewDiscountRuleService,
			service.NewDepositConfigService,

			// API
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	pricingService service.PricingService,
	lateService service.LateReturnService,
	earlyService service.EarlyReturnService,
	retentionService service.DepositRetentionService,
	rentalService service.RentalService,
	durationService service.DurationService,
	rateService service.PricingRateService,
	discountRuleService service.DiscountRuleService,
	settingsService service.SettingsService,
	depositConfigService service.DepositConfigService,
) api.Handlers {
	return api.Handlers{
		Pricing:       v1.NewPricingHandler(pricingService, logger),
		Returns:       v1.NewReturnsHandler(lateService, earlyService, retentionService, logger),
		Rental:        v1.NewRentalHandler(rentalService, logger),
		Duration:      v1.NewDurationHandler(durationService, logger),
		Rate:          v1.NewPricingRateHandler(rateService, logger),
		DiscountRule:  v1.NewDiscountRuleHandler(discountRuleService, logger),
		Settings:      v1.NewSettingsHandler(settingsService, logger),
		DepositConfig: v1.NewDepositConfigHandler(depositConfigService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
