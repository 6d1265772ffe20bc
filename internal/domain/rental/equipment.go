package rental

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// RentalEquipment is an accessory line (helmet, child seat, pannier...)
// added at booking; priced flat per unit, independent of the rented days.
type RentalEquipment struct {
	ID           string          `json:"id"`
	RentalID     string          `json:"rental_id"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	types.BaseModel
}

func (e *RentalEquipment) Validate() error {
	if e.Type == "" {
		return ierr.NewError("equipment type is required").
			WithHint("Please provide an equipment type").
			Mark(ierr.ErrValidation)
	}
	if e.Quantity < 1 {
		return ierr.NewError("quantity must be at least 1").
			WithHint("Please provide a positive quantity").
			Mark(ierr.ErrValidation)
	}
	if e.PricePerUnit.IsNegative() {
		return ierr.NewError("price per unit cannot be negative").
			WithHint("Please provide a non-negative price").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Amount is pricePerUnit x quantity.
func (e *RentalEquipment) Amount() decimal.Decimal {
	return e.PricePerUnit.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
