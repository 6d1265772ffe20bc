package duration

import (
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

var hoursPerDay = decimal.NewFromInt(24)

// DurationDefinition is a named unit of rental time, e.g. "half day" =
// 4 hours or "week" = 7 days. IsCustom marks a free-form span whose length
// is supplied per rental instead of being fixed here.
type DurationDefinition struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Label     string `json:"label"`
	Hours     *int   `json:"hours,omitempty"`
	Days      *int   `json:"days,omitempty"`
	IsCustom  bool   `json:"is_custom"`
	SortOrder int    `json:"sort_order"`
	types.BaseModel
}

// Validate enforces the construction invariants: exactly one of hours/days
// is set unless the duration is custom, and the set value is at least 1.
func (d *DurationDefinition) Validate() error {
	if d.Code == "" {
		return ierr.NewError("duration code is required").
			WithHint("Please provide a duration code").
			Mark(ierr.ErrValidation)
	}
	if d.Label == "" {
		return ierr.NewError("duration label is required").
			WithHint("Please provide a duration label").
			Mark(ierr.ErrValidation)
	}

	if d.IsCustom {
		if d.Hours != nil || d.Days != nil {
			return ierr.NewError("custom duration cannot have fixed hours or days").
				WithHint("Custom durations take their length from each rental").
				Mark(ierr.ErrValidation)
		}
		return nil
	}

	if (d.Hours == nil) == (d.Days == nil) {
		return ierr.NewError("exactly one of hours or days must be set").
			WithHint("Please provide either hours or days, not both").
			Mark(ierr.ErrValidation)
	}
	if d.Hours != nil && *d.Hours < 1 {
		return ierr.NewError("hours must be at least 1").
			WithHint("Please provide a positive number of hours").
			Mark(ierr.ErrValidation)
	}
	if d.Days != nil && *d.Days < 1 {
		return ierr.NewError("days must be at least 1").
			WithHint("Please provide a positive number of days").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// DayEquivalent returns the native day span of the unit: hours/24 for
// hour-based units, the day count for day-based units, and zero for a
// custom duration, which has no intrinsic length.
func (d *DurationDefinition) DayEquivalent() decimal.Decimal {
	switch {
	case d.Hours != nil:
		return decimal.NewFromInt(int64(*d.Hours)).Div(hoursPerDay)
	case d.Days != nil:
		return decimal.NewFromInt(int64(*d.Days))
	default:
		return decimal.Zero
	}
}

// UnitDays returns the size of one billable unit in days. A custom duration
// bills as a daily rate, so its unit size is one day.
func (d *DurationDefinition) UnitDays() decimal.Decimal {
	if d.IsCustom {
		return decimal.NewFromInt(1)
	}
	return d.DayEquivalent()
}
