package rental

import (
	"testing"
	"time"

	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRental(t *testing.T) *Rental {
	t.Helper()
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	r := &Rental{
		ID:                 "rental_test",
		CustomerID:         "cust_1",
		CategoryID:         "cat_vtt",
		PricingClassID:     "class_std",
		DurationID:         "dur_week",
		DurationDays:       decimal.NewFromInt(7),
		StartDate:          start,
		ExpectedReturnDate: start.AddDate(0, 0, 7),
		DepositAmount:      decimal.NewFromInt(200),
		TaxRate:            decimal.NewFromInt(20),
		RentalStatus:       types.RentalStatusReserved,
		DepositStatus:      types.DepositStatusHeld,
	}
	require.NoError(t, r.AddItem(&RentalItem{
		ID:        "item_1",
		BikeID:    "bike_1",
		DailyRate: decimal.NewFromInt(10),
		Quantity:  1,
	}))
	return r
}

func TestRecalculateTotals(t *testing.T) {
	r := newTestRental(t)

	// 10/day x 7 days x 1 bike
	assert.True(t, r.TotalAmount.Equal(decimal.NewFromInt(70)), "got %s", r.TotalAmount)
	// tax 20% of 70
	assert.True(t, r.TaxAmount.Equal(decimal.NewFromInt(14)), "got %s", r.TaxAmount)
	assert.True(t, r.TotalWithTax.Equal(decimal.NewFromInt(84)), "got %s", r.TotalWithTax)

	require.NoError(t, r.AddEquipment(&RentalEquipment{
		ID:           "eqp_1",
		Type:         "helmet",
		Quantity:     2,
		PricePerUnit: decimal.NewFromInt(5),
	}))
	assert.True(t, r.TotalAmount.Equal(decimal.NewFromInt(80)), "got %s", r.TotalAmount)

	require.NoError(t, r.ApplyDiscount(decimal.NewFromInt(30)))
	// taxable 50, tax 10
	assert.True(t, r.TaxAmount.Equal(decimal.NewFromInt(10)), "got %s", r.TaxAmount)
	assert.True(t, r.TotalWithTax.Equal(decimal.NewFromInt(60)), "got %s", r.TotalWithTax)
}

func TestRecalculateTotalsCustomDuration(t *testing.T) {
	r := newTestRental(t)
	r.CustomDuration = true
	r.ExpectedReturnDate = r.StartDate.Add(36 * time.Hour)
	r.RecalculateTotals()

	// 36h is 1.5 days at 10/day
	assert.True(t, r.TotalAmount.Equal(decimal.NewFromInt(15)), "got %s", r.TotalAmount)
}

func TestTaxNeverNegative(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.ApplyDiscount(decimal.NewFromInt(1000)))

	assert.True(t, r.TaxAmount.IsZero())
	assert.True(t, r.TotalWithTax.IsZero())
}

func TestLifecycleHappyPath(t *testing.T) {
	r := newTestRental(t)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, r.Confirm())
	assert.Equal(t, types.RentalStatusPending, r.RentalStatus)

	require.NoError(t, r.Start(now))
	assert.Equal(t, types.RentalStatusActive, r.RentalStatus)
	require.NotNil(t, r.Items[0].CheckedOutAt)
	assert.Equal(t, now, *r.Items[0].CheckedOutAt)

	returnedAt := r.ExpectedReturnDate
	require.NoError(t, r.CheckOut(returnedAt, decimal.Zero, decimal.Zero))
	assert.Equal(t, types.RentalStatusCompleted, r.RentalStatus)
	assert.Equal(t, types.DepositStatusReleased, r.DepositStatus)
	require.NotNil(t, r.ActualReturnDate)
	require.NotNil(t, r.Items[0].CheckedInAt)
}

func TestCheckOutFoldsLateFeeAndDeposit(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Start(r.StartDate))

	lateFee := decimal.NewFromInt(50)
	retained := decimal.NewFromInt(100)
	require.NoError(t, r.CheckOut(r.ExpectedReturnDate.Add(3*time.Hour), lateFee, retained))

	// 70 base + 50 late fee
	assert.True(t, r.TotalAmount.Equal(decimal.NewFromInt(120)), "got %s", r.TotalAmount)
	assert.Equal(t, types.DepositStatusPartial, r.DepositStatus)
	require.NotNil(t, r.DepositRetained)
	assert.True(t, r.DepositRetained.Equal(retained))
}

func TestCheckOutRetainsFullDeposit(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Start(r.StartDate))

	require.NoError(t, r.CheckOut(r.ExpectedReturnDate, decimal.Zero, r.DepositAmount))
	assert.Equal(t, types.DepositStatusRetained, r.DepositStatus)
}

func TestCancelOnlyBeforeStart(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Cancel("changed plans"))
	assert.Equal(t, types.RentalStatusCancelled, r.RentalStatus)
	assert.Equal(t, types.DepositStatusReleased, r.DepositStatus)
	require.NotNil(t, r.CancellationReason)

	active := newTestRental(t)
	require.NoError(t, active.Confirm())
	require.NoError(t, active.Start(active.StartDate))

	err := active.Cancel("too late")
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
	assert.Equal(t, types.RentalStatusActive, active.RentalStatus)
}

func TestIllegalTransitions(t *testing.T) {
	r := newTestRental(t)

	// cannot start or complete from reserved
	assert.Error(t, r.Start(r.StartDate))
	assert.Error(t, r.CheckOut(r.ExpectedReturnDate, decimal.Zero, decimal.Zero))

	require.NoError(t, r.Confirm())
	require.NoError(t, r.Start(r.StartDate))
	require.NoError(t, r.CheckOut(r.ExpectedReturnDate, decimal.Zero, decimal.Zero))

	// terminal states refuse everything
	assert.Error(t, r.Confirm())
	assert.Error(t, r.Cancel("nope"))
	assert.Error(t, r.Start(r.StartDate))
}

func TestIsLateAndDelay(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Start(r.StartDate))

	assert.False(t, r.IsLate(r.ExpectedReturnDate))
	assert.Equal(t, 0, r.DelayInHours(r.ExpectedReturnDate))

	late := r.ExpectedReturnDate.Add(90 * time.Minute)
	assert.True(t, r.IsLate(late))
	assert.Equal(t, 2, r.DelayInHours(late))
}
