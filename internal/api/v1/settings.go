package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service service.SettingsService
	log     *logger.Logger
}

func NewSettingsHandler(service service.SettingsService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, log: log}
}

func (h *SettingsHandler) UpsertSettings(c *gin.Context) {
	var req dto.UpsertRentalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpsertSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEffectiveSettings resolves the settings the calculators would use for
// the given scope, falling back through tenant and application defaults.
func (h *SettingsHandler) GetEffectiveSettings(c *gin.Context) {
	var tenantID, siteID *string
	if t := c.Query("tenant_id"); t != "" {
		tenantID = &t
	}
	if s := c.Query("site_id"); s != "" {
		siteID = &s
	}

	resp, err := h.service.GetEffectiveSettings(c.Request.Context(), tenantID, siteID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRentalSettingsResponse(resp))
}

func (h *SettingsHandler) ListSettings(c *gin.Context) {
	resp, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
