package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

// ReturnsHandler previews return-time charges without touching any rental.
type ReturnsHandler struct {
	lateService      service.LateReturnService
	earlyService     service.EarlyReturnService
	retentionService service.DepositRetentionService
	log              *logger.Logger
}

func NewReturnsHandler(
	lateService service.LateReturnService,
	earlyService service.EarlyReturnService,
	retentionService service.DepositRetentionService,
	log *logger.Logger,
) *ReturnsHandler {
	return &ReturnsHandler{
		lateService:      lateService,
		earlyService:     earlyService,
		retentionService: retentionService,
		log:              log,
	}
}

func (h *ReturnsHandler) CalculateLateFee(c *gin.Context) {
	var req dto.LateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.lateService.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReturnsHandler) CalculateEarlyReturn(c *gin.Context) {
	var req dto.EarlyReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.earlyService.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReturnsHandler) CalculateDepositRetention(c *gin.Context) {
	var req dto.DepositRetentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.retentionService.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
