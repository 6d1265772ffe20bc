package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/discountrule"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// CreateDiscountRuleRequest defines a conditional price reduction.
type CreateDiscountRuleRequest struct {
	Label          string             `json:"label" validate:"required"`
	CategoryID     *string            `json:"category_id,omitempty"`
	PricingClassID *string            `json:"pricing_class_id,omitempty"`
	MinDays        *int               `json:"min_days,omitempty"`
	MinDurationID  *string            `json:"min_duration_id,omitempty"`
	Type           types.DiscountType `json:"type" validate:"required,oneof=fixed percentage"`
	Value          decimal.Decimal    `json:"value" validate:"required"`
	IsCumulative   bool               `json:"is_cumulative"`
	Priority       int                `json:"priority"`
}

func (r *CreateDiscountRuleRequest) ToDiscountRule(base types.BaseModel) *discountrule.DiscountRule {
	return &discountrule.DiscountRule{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_RULE),
		Label:          r.Label,
		CategoryID:     r.CategoryID,
		PricingClassID: r.PricingClassID,
		MinDays:        r.MinDays,
		MinDurationID:  r.MinDurationID,
		Type:           r.Type,
		Value:          r.Value,
		IsCumulative:   r.IsCumulative,
		Priority:       r.Priority,
		BaseModel:      base,
	}
}

// DiscountRuleResponse mirrors a discount rule.
type DiscountRuleResponse struct {
	ID             string             `json:"id"`
	Label          string             `json:"label"`
	CategoryID     *string            `json:"category_id,omitempty"`
	PricingClassID *string            `json:"pricing_class_id,omitempty"`
	MinDays        *int               `json:"min_days,omitempty"`
	MinDurationID  *string            `json:"min_duration_id,omitempty"`
	Type           types.DiscountType `json:"type"`
	Value          decimal.Decimal    `json:"value"`
	IsCumulative   bool               `json:"is_cumulative"`
	Priority       int                `json:"priority"`
	Status         types.Status       `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func NewDiscountRuleResponse(r *discountrule.DiscountRule) *DiscountRuleResponse {
	return &DiscountRuleResponse{
		ID:             r.ID,
		Label:          r.Label,
		CategoryID:     r.CategoryID,
		PricingClassID: r.PricingClassID,
		MinDays:        r.MinDays,
		MinDurationID:  r.MinDurationID,
		Type:           r.Type,
		Value:          r.Value,
		IsCumulative:   r.IsCumulative,
		Priority:       r.Priority,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
