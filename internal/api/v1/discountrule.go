package v1

import (
	"net/http"

	"github.com/fbo94/veloflott/internal/api/dto"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/logger"
	"github.com/fbo94/veloflott/internal/service"
	"github.com/gin-gonic/gin"
)

type DiscountRuleHandler struct {
	service service.DiscountRuleService
	log     *logger.Logger
}

func NewDiscountRuleHandler(service service.DiscountRuleService, log *logger.Logger) *DiscountRuleHandler {
	return &DiscountRuleHandler{service: service, log: log}
}

func (h *DiscountRuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRule(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DiscountRuleHandler) GetRule(c *gin.Context) {
	resp, err := h.service.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DiscountRuleHandler) ListRules(c *gin.Context) {
	resp, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DiscountRuleHandler) ArchiveRule(c *gin.Context) {
	if err := h.service.ArchiveRule(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "discount rule archived successfully"})
}
