package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type DepositConfigHandler struct {
	service service.DepositConfigService
	log     *logger.Logger
}

func NewDepositConfigHandler(service service.DepositConfigService, log *logger.Logger) *DepositConfigHandler {
	return &DepositConfigHandler{service: service, log: log}
}

func (h *DepositConfigHandler) CreateConfig(c *gin.Context) {
	var req dto.CreateDepositConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateConfig(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DepositConfigHandler) GetConfig(c *gin.Context) {
	resp, err := h.service.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DepositConfigHandler) ListConfigs(c *gin.Context) {
	resp, err := h.service.ListConfigs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DepositConfigHandler) ArchiveConfig(c *gin.Context) {
	if err := h.service.ArchiveConfig(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deposit config archived successfully"})
}
