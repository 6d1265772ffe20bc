package settings

import (
	"strings"

	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// RentalSettings is one row of per-scope rental configuration. Scope is
// site > tenant > application default: a row with both TenantID and SiteID
// configures one site, with only TenantID one tenant, with neither the
// whole application.
type RentalSettings struct {
	ID     string  `json:"id"`
	Tenant *string `json:"tenant_id,omitempty"`
	Site   *string `json:"site_id,omitempty"`

	LateToleranceMinutes int             `json:"late_tolerance_minutes"`
	HourlyLateRate       decimal.Decimal `json:"hourly_late_rate"`
	DailyLateRate        decimal.Decimal `json:"daily_late_rate"`

	EarlyReturnEnabled       bool                     `json:"early_return_enabled"`
	EarlyReturnFeeType       types.EarlyReturnFeeType `json:"early_return_fee_type"`
	EarlyReturnFeePercentage *decimal.Decimal         `json:"early_return_fee_percentage,omitempty"`
	EarlyReturnFeeFixed      *decimal.Decimal         `json:"early_return_fee_fixed,omitempty"`

	MaxRentalDurationDays    int `json:"max_rental_duration_days"`
	MinReservationHoursAhead int `json:"min_reservation_hours_ahead"`

	types.BaseModel
}

func (s *RentalSettings) Validate() error {
	if s.Site != nil && s.Tenant == nil {
		return ierr.NewError("site-scoped settings require a tenant").
			WithHint("Please provide a tenant id when scoping settings to a site").
			Mark(ierr.ErrValidation)
	}
	if s.LateToleranceMinutes < 0 {
		return ierr.NewError("late tolerance cannot be negative").
			WithHint("Please provide a non-negative tolerance in minutes").
			Mark(ierr.ErrValidation)
	}
	if s.HourlyLateRate.IsNegative() || s.DailyLateRate.IsNegative() {
		return ierr.NewError("late rates cannot be negative").
			WithHint("Please provide non-negative late rates").
			Mark(ierr.ErrValidation)
	}
	if !s.EarlyReturnFeeType.Validate() {
		return ierr.NewError("invalid early return fee type").
			WithHint("Fee type must be NONE, PERCENTAGE or FIXED").
			Mark(ierr.ErrValidation)
	}
	if s.EarlyReturnFeeType == types.EarlyReturnFeeTypePercentage {
		pct := s.EarlyReturnFeePercentage
		if pct == nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewError("early return fee percentage must be between 0 and 100").
				WithHint("Please provide a valid fee percentage").
				Mark(ierr.ErrValidation)
		}
	}
	if s.EarlyReturnFeeType == types.EarlyReturnFeeTypeFixed {
		if s.EarlyReturnFeeFixed == nil || s.EarlyReturnFeeFixed.IsNegative() {
			return ierr.NewError("early return fixed fee must be non-negative").
				WithHint("Please provide a valid fixed fee amount").
				Mark(ierr.ErrValidation)
		}
	}
	if s.MaxRentalDurationDays < 1 {
		return ierr.NewError("max rental duration must be at least one day").
			WithHint("Please provide a positive maximum rental duration").
			Mark(ierr.ErrValidation)
	}
	if s.MinReservationHoursAhead < 0 {
		return ierr.NewError("min reservation lead time cannot be negative").
			WithHint("Please provide a non-negative lead time in hours").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ScopeKey builds a stable cache/uniqueness key for the settings scope.
func ScopeKey(tenantID, siteID *string) string {
	var sb strings.Builder
	if tenantID != nil {
		sb.WriteString(*tenantID)
	}
	sb.WriteString("|")
	if siteID != nil {
		sb.WriteString(*siteID)
	}
	return sb.String()
}

// DefaultSettings synthesizes the in-memory application default used when no
// settings row exists at any scope, so calculators always have a usable
// configuration.
func DefaultSettings() *RentalSettings {
	pct := decimal.NewFromInt(30)
	return &RentalSettings{
		LateToleranceMinutes:     30,
		HourlyLateRate:           decimal.NewFromInt(10),
		DailyLateRate:            decimal.NewFromInt(50),
		EarlyReturnEnabled:       true,
		EarlyReturnFeeType:       types.EarlyReturnFeeTypePercentage,
		EarlyReturnFeePercentage: &pct,
		MaxRentalDurationDays:    30,
		MinReservationHoursAhead: 2,
	}
}
