package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/settings"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/shopspring/decimal"
)

// UpsertRentalSettingsRequest creates or replaces the settings row for one
// scope. A site-scoped row requires a tenant.
type UpsertRentalSettingsRequest struct {
	TenantID *string `json:"tenant_id,omitempty"`
	SiteID   *string `json:"site_id,omitempty"`

	LateToleranceMinutes int             `json:"late_tolerance_minutes"`
	HourlyLateRate       decimal.Decimal `json:"hourly_late_rate"`
	DailyLateRate        decimal.Decimal `json:"daily_late_rate"`

	EarlyReturnEnabled       bool                     `json:"early_return_enabled"`
	EarlyReturnFeeType       types.EarlyReturnFeeType `json:"early_return_fee_type"`
	EarlyReturnFeePercentage *decimal.Decimal         `json:"early_return_fee_percentage,omitempty"`
	EarlyReturnFeeFixed      *decimal.Decimal         `json:"early_return_fee_fixed,omitempty"`

	MaxRentalDurationDays    int `json:"max_rental_duration_days"`
	MinReservationHoursAhead int `json:"min_reservation_hours_ahead"`
}

func (r *UpsertRentalSettingsRequest) ToRentalSettings(base types.BaseModel) *settings.RentalSettings {
	return &settings.RentalSettings{
		ID:                       types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENTAL_SETTINGS),
		Tenant:                   r.TenantID,
		Site:                     r.SiteID,
		LateToleranceMinutes:     r.LateToleranceMinutes,
		HourlyLateRate:           r.HourlyLateRate,
		DailyLateRate:            r.DailyLateRate,
		EarlyReturnEnabled:       r.EarlyReturnEnabled,
		EarlyReturnFeeType:       r.EarlyReturnFeeType,
		EarlyReturnFeePercentage: r.EarlyReturnFeePercentage,
		EarlyReturnFeeFixed:      r.EarlyReturnFeeFixed,
		MaxRentalDurationDays:    r.MaxRentalDurationDays,
		MinReservationHoursAhead: r.MinReservationHoursAhead,
		BaseModel:                base,
	}
}

// RentalSettingsResponse mirrors one settings row (or the synthesized
// application default, which has an empty id).
type RentalSettingsResponse struct {
	ID       string  `json:"id"`
	TenantID *string `json:"tenant_id,omitempty"`
	SiteID   *string `json:"site_id,omitempty"`

	LateToleranceMinutes int             `json:"late_tolerance_minutes"`
	HourlyLateRate       decimal.Decimal `json:"hourly_late_rate"`
	DailyLateRate        decimal.Decimal `json:"daily_late_rate"`

	EarlyReturnEnabled       bool                     `json:"early_return_enabled"`
	EarlyReturnFeeType       types.EarlyReturnFeeType `json:"early_return_fee_type"`
	EarlyReturnFeePercentage *decimal.Decimal         `json:"early_return_fee_percentage,omitempty"`
	EarlyReturnFeeFixed      *decimal.Decimal         `json:"early_return_fee_fixed,omitempty"`

	MaxRentalDurationDays    int       `json:"max_rental_duration_days"`
	MinReservationHoursAhead int       `json:"min_reservation_hours_ahead"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func NewRentalSettingsResponse(s *settings.RentalSettings) *RentalSettingsResponse {
	return &RentalSettingsResponse{
		ID:                       s.ID,
		TenantID:                 s.Tenant,
		SiteID:                   s.Site,
		LateToleranceMinutes:     s.LateToleranceMinutes,
		HourlyLateRate:           s.HourlyLateRate,
		DailyLateRate:            s.DailyLateRate,
		EarlyReturnEnabled:       s.EarlyReturnEnabled,
		EarlyReturnFeeType:       s.EarlyReturnFeeType,
		EarlyReturnFeePercentage: s.EarlyReturnFeePercentage,
		EarlyReturnFeeFixed:      s.EarlyReturnFeeFixed,
		MaxRentalDurationDays:    s.MaxRentalDurationDays,
		MinReservationHoursAhead: s.MinReservationHoursAhead,
		UpdatedAt:                s.UpdatedAt,
	}
}
