package dto

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/shopspring/decimal"
)

// ConfigSourceDefaultFullRetention marks results produced by the fail-safe
// default when no retention config exists at any hierarchy level.
const ConfigSourceDefaultFullRetention = "default_full_retention"

// DepositRetentionRequest previews the deposit split for reported damage.
type DepositRetentionRequest struct {
	BikeID         string            `json:"bike_id" validate:"required"`
	PricingClassID *string           `json:"pricing_class_id,omitempty"`
	CategoryID     string            `json:"category_id" validate:"required"`
	DamageLevel    types.DamageLevel `json:"damage_level" validate:"required"`
	DepositAmount  decimal.Decimal   `json:"deposit_amount"`
}

func (r *DepositRetentionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.DamageLevel.Validate() {
		return ierr.NewError("invalid damage level").
			WithHint("Damage level must be NONE, MINOR, MAJOR or TOTAL_LOSS").
			Mark(ierr.ErrValidation)
	}
	if r.DepositAmount.IsNegative() {
		return ierr.NewError("deposit amount cannot be negative").
			WithHint("Please provide a non-negative deposit").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DepositRetentionResponse is the deposit split for a damage report.
// RetentionAmount + RefundAmount always equals the deposit.
type DepositRetentionResponse struct {
	RetentionAmount decimal.Decimal   `json:"retention_amount"`
	RefundAmount    decimal.Decimal   `json:"refund_amount"`
	DamageLevel     types.DamageLevel `json:"damage_level"`
	ConfigSource    *string           `json:"config_source,omitempty"`
}
