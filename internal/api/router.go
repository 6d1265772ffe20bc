package api

import (
	v1 "github.com/fbo94/veloflott/internal/api/v1"
	"github.com/fbo94/veloflott/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Pricing       *v1.PricingHandler
	Returns       *v1.ReturnsHandler
	Rental        *v1.RentalHandler
	Duration      *v1.DurationHandler
	Rate          *v1.PricingRateHandler
	DiscountRule  *v1.DiscountRuleHandler
	Settings      *v1.SettingsHandler
	DepositConfig *v1.DepositConfigHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Quote and preview calculators
	pricing := router.Group("/pricing")
	{
		pricing.POST("/calculate", handlers.Pricing.CalculatePrice)
	}

	returns := router.Group("/returns")
	{
		returns.POST("/late-fee", handlers.Returns.CalculateLateFee)
		returns.POST("/early-return", handlers.Returns.CalculateEarlyReturn)
		returns.POST("/deposit-retention", handlers.Returns.CalculateDepositRetention)
	}

	// Rental lifecycle
	rentals := router.Group("/rentals")
	{
		rentals.POST("", handlers.Rental.CreateRental)
		rentals.GET("", handlers.Rental.ListRentals)
		rentals.GET("/:id", handlers.Rental.GetRental)
		rentals.POST("/:id/confirm", handlers.Rental.ConfirmRental)
		rentals.POST("/:id/start", handlers.Rental.StartRental)
		rentals.POST("/:id/checkout", handlers.Rental.CheckOutRental)
		rentals.POST("/:id/cancel", handlers.Rental.CancelRental)
	}

	// Catalog administration
	durations := router.Group("/durations")
	{
		durations.POST("", handlers.Duration.CreateDuration)
		durations.GET("", handlers.Duration.ListDurations)
		durations.GET("/:id", handlers.Duration.GetDuration)
		durations.POST("/:id/archive", handlers.Duration.ArchiveDuration)
	}

	rates := router.Group("/rates")
	{
		rates.POST("", handlers.Rate.CreateRate)
		rates.GET("", handlers.Rate.ListRates)
		rates.GET("/:id", handlers.Rate.GetRate)
		rates.POST("/:id/archive", handlers.Rate.ArchiveRate)
	}

	discounts := router.Group("/discount-rules")
	{
		discounts.POST("", handlers.DiscountRule.CreateRule)
		discounts.GET("", handlers.DiscountRule.ListRules)
		discounts.GET("/:id", handlers.DiscountRule.GetRule)
		discounts.POST("/:id/archive", handlers.DiscountRule.ArchiveRule)
	}

	settings := router.Group("/settings")
	{
		settings.PUT("", handlers.Settings.UpsertSettings)
		settings.GET("", handlers.Settings.ListSettings)
		settings.GET("/effective", handlers.Settings.GetEffectiveSettings)
	}

	depositConfigs := router.Group("/deposit-configs")
	{
		depositConfigs.POST("", handlers.DepositConfig.CreateConfig)
		depositConfigs.GET("", handlers.DepositConfig.ListConfigs)
		depositConfigs.GET("/:id", handlers.DepositConfig.GetConfig)
		depositConfigs.POST("/:id/archive", handlers.DepositConfig.ArchiveConfig)
	}
}
