package rental

import (
	"time"

	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// RentalItem is one rented bike line. It has no identity outside its rental.
type RentalItem struct {
	ID           string          `json:"id"`
	RentalID     string          `json:"rental_id"`
	BikeID       string          `json:"bike_id"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	Quantity     int             `json:"quantity"`
	CheckedOutAt *time.Time      `json:"checked_out_at,omitempty"`
	CheckedInAt  *time.Time      `json:"checked_in_at,omitempty"`
	types.BaseModel
}

func (i *RentalItem) Validate() error {
	if i.BikeID == "" {
		return ierr.NewError("bike id is required").
			WithHint("Please provide a bike for the rental item").
			Mark(ierr.ErrValidation)
	}
	if i.DailyRate.IsNegative() {
		return ierr.NewError("daily rate cannot be negative").
			WithHint("Please provide a non-negative daily rate").
			Mark(ierr.ErrValidation)
	}
	if i.Quantity < 1 {
		return ierr.NewError("quantity must be at least 1").
			WithHint("Please provide a positive quantity").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Amount is dailyRate x days x quantity.
func (i *RentalItem) Amount(days decimal.Decimal) decimal.Decimal {
	return i.DailyRate.Mul(days).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
