package rental

import (
	"math"
	"time"

	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

var (
	oneHundred       = decimal.NewFromInt(100)
	secondsPerDay    = decimal.NewFromInt(86400)
	displayPrecision = int32(2)
)

// Rental is the billable, stateful aggregate of the engine. It exclusively
// owns its items and equipment; durations, rates and discount rules are
// referenced by id with the pricing dimensions snapshotted at booking time.
//
// Derived totals are never patched incrementally: every structural mutation
// re-runs RecalculateTotals so the aggregate cannot hold stale amounts.
type Rental struct {
	ID            string  `json:"id"`
	BookingNumber string  `json:"booking_number"`
	CustomerID    string  `json:"customer_id"`
	SiteID        *string `json:"site_id,omitempty"`

	// Pricing dimensions snapshotted from the booking quote
	CategoryID     string          `json:"category_id"`
	PricingClassID string          `json:"pricing_class_id"`
	DurationID     string          `json:"duration_id"`
	DurationDays   decimal.Decimal `json:"duration_days"`
	CustomDuration bool            `json:"custom_duration"`

	StartDate          time.Time  `json:"start_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`

	DepositAmount   decimal.Decimal  `json:"deposit_amount"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	LateFeeAmount   decimal.Decimal  `json:"late_fee_amount"`
	TaxRate         decimal.Decimal  `json:"tax_rate"`
	TaxAmount       decimal.Decimal  `json:"tax_amount"`
	TotalWithTax    decimal.Decimal  `json:"total_with_tax"`
	DepositRetained *decimal.Decimal `json:"deposit_retained,omitempty"`

	RentalStatus       types.RentalStatus  `json:"rental_status"`
	DepositStatus      types.DepositStatus `json:"deposit_status"`
	CancellationReason *string             `json:"cancellation_reason,omitempty"`

	Items      []*RentalItem      `json:"items,omitempty"`
	Equipments []*RentalEquipment `json:"equipments,omitempty"`

	Metadata types.Metadata `json:"metadata,omitempty"`
	Version  int            `json:"version"`
	types.BaseModel
}

func (r *Rental) Validate() error {
	if r.CustomerID == "" {
		return ierr.NewError("customer id is required").
			WithHint("Please provide a customer").
			Mark(ierr.ErrValidation)
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
	if r.TaxRate.IsNegative() {
		return ierr.NewError("tax rate cannot be negative").
			WithHint("Please provide a non-negative tax rate").
			Mark(ierr.ErrValidation)
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	for _, eq := range r.Equipments {
		if err := eq.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RentedDays returns the day count the rental is billed for: the duration's
// native day count, or the actual booked span for a custom duration.
func (r *Rental) RentedDays() decimal.Decimal {
	if r.CustomDuration {
		seconds := decimal.NewFromInt(int64(r.ExpectedReturnDate.Sub(r.StartDate) / time.Second))
		return seconds.Div(secondsPerDay)
	}
	return r.DurationDays
}

// AddItem appends a bike line item and recomputes all derived totals.
func (r *Rental) AddItem(item *RentalItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.RentalID = r.ID
	r.Items = append(r.Items, item)
	r.RecalculateTotals()
	return nil
}

// AddEquipment appends an equipment line and recomputes all derived totals.
func (r *Rental) AddEquipment(eq *RentalEquipment) error {
	if err := eq.Validate(); err != nil {
		return err
	}
	eq.RentalID = r.ID
	r.Equipments = append(r.Equipments, eq)
	r.RecalculateTotals()
	return nil
}

// ApplyDiscount sets the aggregate discount and recomputes tax and totals.
func (r *Rental) ApplyDiscount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ierr.NewError("discount amount cannot be negative").
			WithHint("Please provide a non-negative discount").
			Mark(ierr.ErrValidation)
	}
	r.DiscountAmount = amount
	r.RecalculateTotals()
	return nil
}

// RecalculateTotals recomputes totalAmount from the owned lines plus any
// late fee, then the tax amounts. It is the single source of truth for the
// aggregate's derived money fields.
func (r *Rental) RecalculateTotals() {
	days := r.RentedDays()

	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Amount(days))
	}
	for _, eq := range r.Equipments {
		total = total.Add(eq.Amount())
	}
	r.TotalAmount = total.Add(r.LateFeeAmount)

	r.recalculateTax()
}

func (r *Rental) recalculateTax() {
	taxable := r.TotalAmount.Sub(r.DiscountAmount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	r.TaxAmount = taxable.Mul(r.TaxRate).Div(oneHundred).Round(displayPrecision)
	r.TotalWithTax = taxable.Add(r.TaxAmount)
}

// Confirm moves a reserved rental to PENDING.
func (r *Rental) Confirm() error {
	if err := r.ensureTransition(types.RentalStatusPending); err != nil {
		return err
	}
	r.RentalStatus = types.RentalStatusPending
	return nil
}

// Start checks the rental in: PENDING → ACTIVE. From here the bikes are
// physically blocked (RentalStatus.BlocksBike).
func (r *Rental) Start(at time.Time) error {
	if err := r.ensureTransition(types.RentalStatusActive); err != nil {
		return err
	}
	r.RentalStatus = types.RentalStatusActive
	for _, item := range r.Items {
		checkedOut := at
		item.CheckedOutAt = &checkedOut
	}
	return nil
}

// CheckOut completes an active rental: records the actual return, folds the
// late fee into the total, and resolves the deposit from the retained
// amount. retained must already be capped at the deposit.
func (r *Rental) CheckOut(actualReturn time.Time, lateFee, retained decimal.Decimal) error {
	if err := r.ensureTransition(types.RentalStatusCompleted); err != nil {
		return err
	}

	r.RentalStatus = types.RentalStatusCompleted
	r.ActualReturnDate = &actualReturn
	r.LateFeeAmount = lateFee
	for _, item := range r.Items {
		checkedIn := actualReturn
		item.CheckedInAt = &checkedIn
	}
	r.RecalculateTotals()

	r.DepositRetained = &retained
	switch {
	case retained.IsZero():
		r.DepositStatus = types.DepositStatusReleased
	case retained.GreaterThanOrEqual(r.DepositAmount):
		r.DepositStatus = types.DepositStatusRetained
	default:
		r.DepositStatus = types.DepositStatusPartial
	}

	return nil
}

// Cancel aborts a rental that has not been checked in yet and releases the
// deposit. An in-progress rental must use the early-return path instead.
func (r *Rental) Cancel(reason string) error {
	if err := r.ensureTransition(types.RentalStatusCancelled); err != nil {
		return err
	}
	r.RentalStatus = types.RentalStatusCancelled
	r.CancellationReason = &reason
	r.DepositStatus = types.DepositStatusReleased
	return nil
}

func (r *Rental) ensureTransition(target types.RentalStatus) error {
	if !r.RentalStatus.CanTransitionTo(target) {
		return ierr.NewErrorf("cannot transition rental from %s to %s", r.RentalStatus, target).
			WithHintf("Rental is %s", r.RentalStatus).
			WithReportableDetails(map[string]any{
				"rental_id":      r.ID,
				"current_status": r.RentalStatus,
				"target_status":  target,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}

// IsActive reports whether the rental is currently checked in.
func (r *Rental) IsActive() bool {
	return r.RentalStatus == types.RentalStatusActive
}

// IsLate reports whether an active rental is past its expected return.
func (r *Rental) IsLate(now time.Time) bool {
	return r.IsActive() && now.After(r.ExpectedReturnDate)
}

// DelayInHours returns the whole hours the rental is past its expected
// return, rounded up; zero when not late.
func (r *Rental) DelayInHours(now time.Time) int {
	if !r.IsLate(now) {
		return 0
	}
	return int(math.Ceil(now.Sub(r.ExpectedReturnDate).Hours()))
}
