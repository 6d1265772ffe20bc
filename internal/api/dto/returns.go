package dto

import (
	"time"

	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
	"github.com/shopspring/decimal"
)

// LateReturnRequest previews the late fee for a return at a given time.
// Tenant and site scope the settings lookup; both may be empty.
type LateReturnRequest struct {
	ExpectedReturnDate time.Time `json:"expected_return_date" validate:"required"`
	ActualReturnDate   time.Time `json:"actual_return_date" validate:"required"`
	TenantID           *string   `json:"tenant_id,omitempty"`
	SiteID             *string   `json:"site_id,omitempty"`
}

func (r *LateReturnRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// LateReturnResponse is the late fee breakdown. The fee regime switches
// from hourly to daily at 24 billable hours.
type LateReturnResponse struct {
	IsLate           bool            `json:"is_late"`
	MinutesLate      int             `json:"minutes_late"`
	HoursLate        int             `json:"hours_late"`
	DaysLate         int             `json:"days_late"`
	FeeAmount        decimal.Decimal `json:"fee_amount"`
	ToleranceMinutes int             `json:"tolerance_minutes"`
	WithinTolerance  bool            `json:"within_tolerance"`
}

// EarlyReturnRequest previews the refund for returning before schedule.
type EarlyReturnRequest struct {
	StartDate          time.Time       `json:"start_date" validate:"required"`
	ExpectedReturnDate time.Time       `json:"expected_return_date" validate:"required"`
	ActualReturnDate   time.Time       `json:"actual_return_date" validate:"required"`
	TotalAmount        decimal.Decimal `json:"total_amount" validate:"required"`
	TenantID           *string         `json:"tenant_id,omitempty"`
	SiteID             *string         `json:"site_id,omitempty"`
}

func (r *EarlyReturnRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.TotalAmount.IsNegative() {
		return ierr.NewError("total amount cannot be negative").
			WithHint("Please provide a non-negative total amount").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// EarlyReturnResponse is the early-return proration breakdown.
// FeeAmount + RefundAmount always equals UnusedAmount.
type EarlyReturnResponse struct {
	UnusedDays   int                      `json:"unused_days"`
	UnusedAmount decimal.Decimal          `json:"unused_amount"`
	FeeAmount    decimal.Decimal          `json:"fee_amount"`
	RefundAmount decimal.Decimal          `json:"refund_amount"`
	FeeType      types.EarlyReturnFeeType `json:"fee_type"`
	IsEnabled    bool                     `json:"is_enabled"`
}
