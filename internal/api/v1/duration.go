package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type DurationHandler struct {
	service service.DurationService
	log     *logger.Logger
}

func NewDurationHandler(service service.DurationService, log *logger.Logger) *DurationHandler {
	return &DurationHandler{service: service, log: log}
}

func (h *DurationHandler) CreateDuration(c *gin.Context) {
	var req dto.CreateDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateDuration(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DurationHandler) GetDuration(c *gin.Context) {
	resp, err := h.service.GetDuration(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DurationHandler) ListDurations(c *gin.Context) {
	resp, err := h.service.ListDurations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DurationHandler) ArchiveDuration(c *gin.Context) {
	if err := h.service.ArchiveDuration(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "duration archived successfully"})
}
