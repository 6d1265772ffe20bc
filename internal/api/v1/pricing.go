package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	service service.PricingService
	log     *logger.Logger
}

func NewPricingHandler(service service.PricingService, log *logger.Logger) *PricingHandler {
	return &PricingHandler{service: service, log: log}
}

// CalculatePrice returns a full price quote for a pricing triple, including
// the discount breakdown.
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var req dto.CalculatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
