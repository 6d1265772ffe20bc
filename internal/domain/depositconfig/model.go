package depositconfig

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// DepositRetentionConfig maps damage severity to the deposit amount retained
// at return. Exactly one target is set: a specific bike, a pricing class, or
// a whole category; resolution tries them in that order.
type DepositRetentionConfig struct {
	ID             string  `json:"id"`
	BikeID         *string `json:"bike_id,omitempty"`
	PricingClassID *string `json:"pricing_class_id,omitempty"`
	CategoryID     *string `json:"category_id,omitempty"`

	MinorDamageAmount decimal.Decimal `json:"minor_damage_amount"`
	MajorDamageAmount decimal.Decimal `json:"major_damage_amount"`
	TotalLossAmount   decimal.Decimal `json:"total_loss_amount"`

	types.BaseModel
}

func (c *DepositRetentionConfig) Validate() error {
	targets := 0
	for _, t := range []*string{c.BikeID, c.PricingClassID, c.CategoryID} {
		if t != nil {
			targets++
		}
	}
	if targets != 1 {
		return ierr.NewError("exactly one of bike, pricing class or category must be targeted").
			WithHint("Please target the config at one bike, one pricing class or one category").
			Mark(ierr.ErrValidation)
	}

	if c.MinorDamageAmount.IsNegative() {
		return ierr.NewError("minor damage amount cannot be negative").
			WithHint("Please provide non-negative retention amounts").
			Mark(ierr.ErrValidation)
	}
	if c.MinorDamageAmount.GreaterThan(c.MajorDamageAmount) ||
		c.MajorDamageAmount.GreaterThan(c.TotalLossAmount) {
		return ierr.NewError("retention amounts must satisfy minor <= major <= total loss").
			WithHint("Please order the retention amounts by severity").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// AmountFor returns the configured retention amount for a damage level.
// DamageLevelNone retains nothing.
func (c *DepositRetentionConfig) AmountFor(level types.DamageLevel) decimal.Decimal {
	switch level {
	case types.DamageLevelMinor:
		return c.MinorDamageAmount
	case types.DamageLevelMajor:
		return c.MajorDamageAmount
	case types.DamageLevelTotalLoss:
		return c.TotalLossAmount
	default:
		return decimal.Zero
	}
}
