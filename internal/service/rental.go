package service

import (
	"context"
	"time"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/rental"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RentalService owns the rental aggregate lifecycle from booking to
// completion or cancellation.
type RentalService interface {
	CreateRental(ctx context.Context, req dto.CreateRentalRequest) (*dto.RentalResponse, error)
	GetRental(ctx context.Context, id string) (*dto.RentalResponse, error)
	ListRentals(ctx context.Context) ([]*dto.RentalResponse, error)
	ConfirmRental(ctx context.Context, id string) (*dto.RentalResponse, error)
	StartRental(ctx context.Context, id string) (*dto.RentalResponse, error)
	CheckOutRental(ctx context.Context, id string, req dto.CheckOutRentalRequest) (*dto.RentalResponse, error)
	CancelRental(ctx context.Context, id string, req dto.CancelRentalRequest) (*dto.RentalResponse, error)
}

type rentalService struct {
	ServiceParams
	pricingService   PricingService
	settingsService  SettingsService
	retentionService DepositRetentionService
}

func NewRentalService(
	params ServiceParams,
	pricingService PricingService,
	settingsService SettingsService,
	retentionService DepositRetentionService,
) RentalService {
	return &rentalService{
		ServiceParams:    params,
		pricingService:   pricingService,
		settingsService:  settingsService,
		retentionService: retentionService,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, req dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tenantID, siteID := scopeFromContext(ctx)
	if req.SiteID != nil {
		siteID = req.SiteID
	}
	cfg, err := s.settingsService.GetEffectiveSettings(ctx, tenantID, siteID)
	if err != nil {
		return nil, err
	}

	if err := s.validateBookingWindow(req.StartDate, req.ExpectedReturnDate, cfg.MaxRentalDurationDays, cfg.MinReservationHoursAhead); err != nil {
		return nil, err
	}

	bikeIDs := lo.Map(req.Items, func(item dto.CreateRentalItemRequest, _ int) string {
		return item.BikeID
	})
	overlapping, err := s.RentalRepo.ListOverlapping(ctx, bikeIDs, req.StartDate, req.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ierr.NewError("one or more bikes are already booked for this period").
			WithHint("Please choose different bikes or dates").
			WithReportableDetails(map[string]any{
				"conflicting_rental_ids": lo.Map(overlapping, func(r *rental.Rental, _ int) string { return r.ID }),
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	dur, err := s.DurationRepo.Get(ctx, req.DurationID)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricingService.Calculate(ctx, dto.CalculatePricingRequest{
		CategoryID:     req.CategoryID,
		PricingClassID: req.PricingClassID,
		DurationID:     req.DurationID,
		CustomDays:     req.CustomDays,
	})
	if err != nil {
		return nil, err
	}

	r := &rental.Rental{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENTAL),
		BookingNumber:      types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_BOOKING),
		CustomerID:         req.CustomerID,
		SiteID:             req.SiteID,
		CategoryID:         req.CategoryID,
		PricingClassID:     req.PricingClassID,
		DurationID:         req.DurationID,
		DurationDays:       quote.Days,
		CustomDuration:     dur.IsCustom,
		StartDate:          req.StartDate,
		ExpectedReturnDate: req.ExpectedReturnDate,
		DepositAmount:      req.DepositAmount,
		TaxRate:            decimal.NewFromFloat(s.Config.Rental.DefaultTaxRate),
		RentalStatus:       types.RentalStatusReserved,
		DepositStatus:      types.DepositStatusHeld,
		Metadata:           req.Metadata,
		Version:            1,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}

	for _, itemReq := range req.Items {
		dailyRate := itemReq.DailyRate
		if dailyRate.IsZero() {
			dailyRate = quote.PricePerDay
		}
		item := &rental.RentalItem{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENTAL_ITEM),
			BikeID:    itemReq.BikeID,
			DailyRate: dailyRate,
			Quantity:  itemReq.Quantity,
			BaseModel: types.GetDefaultBaseModel(ctx),
		}
		if err := r.AddItem(item); err != nil {
			return nil, err
		}
	}

	for _, eqReq := range req.Equipments {
		eq := &rental.RentalEquipment{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENTAL_EQUIPMENT),
			Type:         eqReq.Type,
			Quantity:     eqReq.Quantity,
			PricePerUnit: eqReq.PricePerUnit,
			BaseModel:    types.GetDefaultBaseModel(ctx),
		}
		if err := r.AddEquipment(eq); err != nil {
			return nil, err
		}
	}

	if err := r.ApplyDiscount(quote.TotalDiscountAmount); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.RentalRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.Logger.Infow("rental created",
		"rental_id", r.ID,
		"booking_number", r.BookingNumber,
		"customer_id", r.CustomerID,
		"total_with_tax", r.TotalWithTax)

	return dto.NewRentalResponse(r), nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*dto.RentalResponse, error) {
	r, err := s.RentalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRentalResponse(r), nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]*dto.RentalResponse, error) {
	rentals, err := s.RentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		responses = append(responses, dto.NewRentalResponse(r))
	}
	return responses, nil
}

func (s *rentalService) ConfirmRental(ctx context.Context, id string) (*dto.RentalResponse, error) {
	return s.mutate(ctx, id, func(r *rental.Rental) error {
		return r.Confirm()
	})
}

func (s *rentalService) StartRental(ctx context.Context, id string) (*dto.RentalResponse, error) {
	return s.mutate(ctx, id, func(r *rental.Rental) error {
		return r.Start(time.Now().UTC())
	})
}

// CheckOutRental completes an active rental: computes the late fee from the
// effective settings and the deposit retention from the reported damage,
// then finalizes the aggregate.
func (s *rentalService) CheckOutRental(ctx context.Context, id string, req dto.CheckOutRentalRequest) (*dto.RentalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(r *rental.Rental) error {
		tenantID, siteID := scopeFromContext(ctx)
		if r.SiteID != nil {
			siteID = r.SiteID
		}
		cfg, err := s.settingsService.GetEffectiveSettings(ctx, tenantID, siteID)
		if err != nil {
			return err
		}
		lateFee := computeLateFee(r.ExpectedReturnDate, req.ActualReturnDate, cfg).FeeAmount

		// retention is looked up through the first bike on the booking,
		// pricing dimensions are shared across all items
		retained := decimal.Zero
		if len(r.Items) > 0 {
			retention, err := s.retentionService.Calculate(ctx, dto.DepositRetentionRequest{
				BikeID:         r.Items[0].BikeID,
				PricingClassID: lo.ToPtr(r.PricingClassID),
				CategoryID:     r.CategoryID,
				DamageLevel:    req.DamageLevel,
				DepositAmount:  r.DepositAmount,
			})
			if err != nil {
				return err
			}
			retained = retention.RetentionAmount
		}

		return r.CheckOut(req.ActualReturnDate, lateFee, retained)
	})
}

func (s *rentalService) CancelRental(ctx context.Context, id string, req dto.CancelRentalRequest) (*dto.RentalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(r *rental.Rental) error {
		return r.Cancel(req.Reason)
	})
}

// mutate loads a rental, applies fn and persists it through the
// version-guarded update.
func (s *rentalService) mutate(ctx context.Context, id string, fn func(r *rental.Rental) error) (*dto.RentalResponse, error) {
	r, err := s.RentalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	if err := s.RentalRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.Logger.Infow("rental updated",
		"rental_id", r.ID,
		"rental_status", r.RentalStatus,
		"version", r.Version)

	return dto.NewRentalResponse(r), nil
}

func (s *rentalService) validateBookingWindow(start, expected time.Time, maxDays, minLeadHours int) error {
	if start.Before(time.Now().UTC().Add(time.Duration(minLeadHours) * time.Hour)) {
		return ierr.NewErrorf("reservations require at least %d hours lead time", minLeadHours).
			WithHint("Please choose a later start date").
			Mark(ierr.ErrValidation)
	}
	if expected.Sub(start) > time.Duration(maxDays)*24*time.Hour {
		return ierr.NewErrorf("rental duration exceeds the maximum of %d days", maxDays).
			WithHint("Please choose a shorter rental period").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// scopeFromContext converts the request-scoped tenant and site ids into the
// pointer form the settings resolution expects, empty means unscoped.
func scopeFromContext(ctx context.Context) (*string, *string) {
	var tenantID, siteID *string
	if t := types.GetTenantID(ctx); t != "" {
		tenantID = &t
	}
	if s := types.GetSiteID(ctx); s != "" {
		siteID = &s
	}
	return tenantID, siteID
}
