package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// CreateDepositConfigRequest targets a retention table at exactly one of a
// bike, a pricing class or a category.
type CreateDepositConfigRequest struct {
	BikeID         *string `json:"bike_id,omitempty"`
	PricingClassID *string `json:"pricing_class_id,omitempty"`
	CategoryID     *string `json:"category_id,omitempty"`

	MinorDamageAmount decimal.Decimal `json:"minor_damage_amount"`
	MajorDamageAmount decimal.Decimal `json:"major_damage_amount"`
	TotalLossAmount   decimal.Decimal `json:"total_loss_amount"`
}

func (r *CreateDepositConfigRequest) ToDepositRetentionConfig(base types.BaseModel) *depositconfig.DepositRetentionConfig {
	return &depositconfig.DepositRetentionConfig{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DEPOSIT_CONFIG),
		BikeID:            r.BikeID,
		PricingClassID:    r.PricingClassID,
		CategoryID:        r.CategoryID,
		MinorDamageAmount: r.MinorDamageAmount,
		MajorDamageAmount: r.MajorDamageAmount,
		TotalLossAmount:   r.TotalLossAmount,
		BaseModel:         base,
	}
}

// DepositConfigResponse mirrors a deposit retention config.
type DepositConfigResponse struct {
	ID                string          `json:"id"`
	BikeID            *string         `json:"bike_id,omitempty"`
	PricingClassID    *string         `json:"pricing_class_id,omitempty"`
	CategoryID        *string         `json:"category_id,omitempty"`
	MinorDamageAmount decimal.Decimal `json:"minor_damage_amount"`
	MajorDamageAmount decimal.Decimal `json:"major_damage_amount"`
	TotalLossAmount   decimal.Decimal `json:"total_loss_amount"`
	Status            types.Status    `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewDepositConfigResponse(c *depositconfig.DepositRetentionConfig) *DepositConfigResponse {
	return &DepositConfigResponse{
		ID:                c.ID,
		BikeID:            c.BikeID,
		PricingClassID:    c.PricingClassID,
		CategoryID:        c.CategoryID,
		MinorDamageAmount: c.MinorDamageAmount,
		MajorDamageAmount: c.MajorDamageAmount,
		TotalLossAmount:   c.TotalLossAmount,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
