package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/rental"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateRentalItemRequest is one bike on a booking.
type CreateRentalItemRequest struct {
	BikeID    string          `json:"bike_id" validate:"required"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

// CreateRentalEquipmentRequest is one accessory line on a booking.
type CreateRentalEquipmentRequest struct {
	Type         string          `json:"type" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// CreateRentalRequest books a rental. The booking is priced through the
// pricing engine from the (category, pricing class, duration) triple;
// CustomDays is mandatory when the duration is custom.
type CreateRentalRequest struct {
	CustomerID         string                         `json:"customer_id" validate:"required"`
	SiteID             *string                        `json:"site_id,omitempty"`
	CategoryID         string                         `json:"category_id" validate:"required"`
	PricingClassID     string                         `json:"pricing_class_id" validate:"required"`
	DurationID         string                         `json:"duration_id" validate:"required"`
	CustomDays         *decimal.Decimal               `json:"custom_days,omitempty"`
	StartDate          time.Time                      `json:"start_date" validate:"required"`
	ExpectedReturnDate time.Time                      `json:"expected_return_date" validate:"required"`
	DepositAmount      decimal.Decimal                `json:"deposit_amount"`
	Items              []CreateRentalItemRequest      `json:"items" validate:"required,min=1,dive"`
	Equipments         []CreateRentalEquipmentRequest `json:"equipments,omitempty" validate:"omitempty,dive"`
	Metadata           types.Metadata                 `json:"metadata,omitempty"`
}

func (r *CreateRentalRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.ExpectedReturnDate.After(r.StartDate) {
		return ierr.NewError("expected return date must be after start date").
			WithHint("Please provide a valid rental period").
			Mark(ierr.ErrValidation)
	}
	if r.DepositAmount.IsNegative() {
		return ierr.NewError("deposit amount cannot be negative").
			WithHint("Please provide a non-negative deposit").
			Mark(ierr.ErrValidation)
	}
	if r.CustomDays != nil && r.CustomDays.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("custom days must be greater than zero").
			WithHint("Please provide a positive number of days").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CheckOutRentalRequest completes an active rental. DamageLevel drives the
// deposit retention; concurrent completion is rejected by the repository's
// version check.
type CheckOutRentalRequest struct {
	ActualReturnDate time.Time         `json:"actual_return_date" validate:"required"`
	DamageLevel      types.DamageLevel `json:"damage_level" validate:"required"`
}

func (r *CheckOutRentalRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.DamageLevel.Validate() {
		return ierr.NewError("invalid damage level").
			WithHint("Damage level must be NONE, MINOR, MAJOR or TOTAL_LOSS").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CancelRentalRequest aborts a rental before check-in.
type CancelRentalRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (r *CancelRentalRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// RentalItemResponse mirrors a rental line item.
type RentalItemResponse struct {
	ID           string          `json:"id"`
	BikeID       string          `json:"bike_id"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	Quantity     int             `json:"quantity"`
	CheckedOutAt *time.Time      `json:"checked_out_at,omitempty"`
	CheckedInAt  *time.Time      `json:"checked_in_at,omitempty"`
}

// RentalEquipmentResponse mirrors a rental equipment line.
type RentalEquipmentResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Amount       decimal.Decimal `json:"amount"`
}

// RentalResponse is the serialized rental aggregate.
type RentalResponse struct {
	ID                 string                    `json:"id"`
	BookingNumber      string                    `json:"booking_number"`
	CustomerID         string                    `json:"customer_id"`
	SiteID             *string                   `json:"site_id,omitempty"`
	CategoryID         string                    `json:"category_id"`
	PricingClassID     string                    `json:"pricing_class_id"`
	DurationID         string                    `json:"duration_id"`
	StartDate          time.Time                 `json:"start_date"`
	ExpectedReturnDate time.Time                 `json:"expected_return_date"`
	ActualReturnDate   *time.Time                `json:"actual_return_date,omitempty"`
	DepositAmount      decimal.Decimal           `json:"deposit_amount"`
	TotalAmount        decimal.Decimal           `json:"total_amount"`
	DiscountAmount     decimal.Decimal           `json:"discount_amount"`
	LateFeeAmount      decimal.Decimal           `json:"late_fee_amount"`
	TaxRate            decimal.Decimal           `json:"tax_rate"`
	TaxAmount          decimal.Decimal           `json:"tax_amount"`
	TotalWithTax       decimal.Decimal           `json:"total_with_tax"`
	RentalStatus       types.RentalStatus        `json:"rental_status"`
	DepositStatus      types.DepositStatus       `json:"deposit_status"`
	DepositRetained    *decimal.Decimal          `json:"deposit_retained,omitempty"`
	CancellationReason *string                   `json:"cancellation_reason,omitempty"`
	Items              []RentalItemResponse      `json:"items"`
	Equipments         []RentalEquipmentResponse `json:"equipments,omitempty"`
	Version            int                       `json:"version"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// NewRentalResponse converts a rental aggregate to its response record.
func NewRentalResponse(r *rental.Rental) *RentalResponse {
	items := make([]RentalItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, RentalItemResponse{
			ID:           item.ID,
			BikeID:       item.BikeID,
			DailyRate:    item.DailyRate,
			Quantity:     item.Quantity,
			CheckedOutAt: item.CheckedOutAt,
			CheckedInAt:  item.CheckedInAt,
		})
	}

	equipments := make([]RentalEquipmentResponse, 0, len(r.Equipments))
	for _, eq := range r.Equipments {
		equipments = append(equipments, RentalEquipmentResponse{
			ID:           eq.ID,
			Type:         eq.Type,
			Quantity:     eq.Quantity,
			PricePerUnit: eq.PricePerUnit,
			Amount:       eq.Amount(),
		})
	}

	return &RentalResponse{
		ID:                 r.ID,
		BookingNumber:      r.BookingNumber,
		CustomerID:         r.CustomerID,
		SiteID:             r.SiteID,
		CategoryID:         r.CategoryID,
		PricingClassID:     r.PricingClassID,
		DurationID:         r.DurationID,
		StartDate:          r.StartDate,
		ExpectedReturnDate: r.ExpectedReturnDate,
		ActualReturnDate:   r.ActualReturnDate,
		DepositAmount:      r.DepositAmount,
		TotalAmount:        r.TotalAmount,
		DiscountAmount:     r.DiscountAmount,
		LateFeeAmount:      r.LateFeeAmount,
		TaxRate:            r.TaxRate,
		TaxAmount:          r.TaxAmount,
		TotalWithTax:       r.TotalWithTax,
		RentalStatus:       r.RentalStatus,
		DepositStatus:      r.DepositStatus,
		DepositRetained:    r.DepositRetained,
		CancellationReason: r.CancellationReason,
		Items:              items,
		Equipments:         equipments,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
