package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type PricingRateHandler struct {
	service service.PricingRateService
	log     *logger.Logger
}

func NewPricingRateHandler(service service.PricingRateService, log *logger.Logger) *PricingRateHandler {
	return &PricingRateHandler{service: service, log: log}
}

func (h *PricingRateHandler) CreateRate(c *gin.Context) {
	var req dto.CreatePricingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PricingRateHandler) GetRate(c *gin.Context) {
	resp, err := h.service.GetRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PricingRateHandler) ListRates(c *gin.Context) {
	resp, err := h.service.ListRates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PricingRateHandler) ArchiveRate(c *gin.Context) {
	if err := h.service.ArchiveRate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rate archived successfully"})
}
