package service

import (
	"testing"
	"time"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/domain/rate"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/testutil"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RentalServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  RentalService
	duration *duration.DurationDefinition
	start    time.Time
}

func TestRentalService(t *testing.T) {
	suite.Run(t, new(RentalServiceSuite))
}

func (s *RentalServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := newTestServiceParams(&s.BaseServiceTestSuite)
	settingsService := NewSettingsService(params)
	pricingService := NewPricingService(params)
	retentionService := NewDepositRetentionService(params)
	s.service = NewRentalService(params, pricingService, settingsService, retentionService)

	// a published week duration with a 140 weekly rate (20/day)
	s.duration = &duration.DurationDefinition{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DURATION),
		Code:      "week",
		Label:     "One week",
		Days:      lo.ToPtr(7),
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().DurationRepo.Create(s.GetContext(), s.duration))
	s.NoError(s.GetStores().RateRepo.Create(s.GetContext(), &rate.PricingRate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICING_RATE),
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     s.duration.ID,
		Price:          decimal.NewFromInt(140),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}))

	// default minimum lead time is 2 hours
	s.start = time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
}

func (s *RentalServiceSuite) createRequest() dto.CreateRentalRequest {
	return dto.CreateRentalRequest{
		CustomerID:         "cust_1",
		CategoryID:         "cat_vtt",
		PricingClassID:     "class_std",
		DurationID:         s.duration.ID,
		StartDate:          s.start,
		ExpectedReturnDate: s.start.AddDate(0, 0, 7),
		DepositAmount:      decimal.NewFromInt(200),
		Items: []dto.CreateRentalItemRequest{
			{BikeID: "bike_1", Quantity: 1},
		},
	}
}

func (s *RentalServiceSuite) createRental() *dto.RentalResponse {
	resp, err := s.service.CreateRental(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.NotNil(resp)
	return resp
}

func (s *RentalServiceSuite) TestCreateRental() {
	resp := s.createRental()

	s.Equal(types.RentalStatusReserved, resp.RentalStatus)
	s.Equal(types.DepositStatusHeld, resp.DepositStatus)
	s.NotEmpty(resp.BookingNumber)
	s.Equal(1, resp.Version)

	// the item picked up the quote's per-day rate: 140/7 = 20, so
	// total is 20 x 7 = 140, tax 20% on top
	s.Require().Len(resp.Items, 1)
	s.True(resp.Items[0].DailyRate.Equal(decimal.NewFromInt(20)), "got %s", resp.Items[0].DailyRate)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(140)), "got %s", resp.TotalAmount)
	s.True(resp.TaxAmount.Equal(decimal.NewFromInt(28)), "got %s", resp.TaxAmount)
	s.True(resp.TotalWithTax.Equal(decimal.NewFromInt(168)), "got %s", resp.TotalWithTax)
}

func (s *RentalServiceSuite) TestCreateRentalWithEquipment() {
	req := s.createRequest()
	req.Equipments = []dto.CreateRentalEquipmentRequest{
		{Type: "helmet", Quantity: 2, PricePerUnit: decimal.NewFromInt(5)},
	}

	resp, err := s.service.CreateRental(s.GetContext(), req)
	s.NoError(err)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(150)), "got %s", resp.TotalAmount)
}

func (s *RentalServiceSuite) TestCreateRejectsShortLeadTime() {
	req := s.createRequest()
	req.StartDate = time.Now().UTC().Add(30 * time.Minute)
	req.ExpectedReturnDate = req.StartDate.AddDate(0, 0, 7)

	_, err := s.service.CreateRental(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RentalServiceSuite) TestCreateRejectsExcessiveDuration() {
	req := s.createRequest()
	// default maximum is 30 days
	req.ExpectedReturnDate = req.StartDate.AddDate(0, 0, 45)

	_, err := s.service.CreateRental(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RentalServiceSuite) TestCreateRejectsOverlappingBooking() {
	s.createRental()

	// same bike, overlapping period
	req := s.createRequest()
	req.StartDate = s.start.AddDate(0, 0, 3)
	req.ExpectedReturnDate = req.StartDate.AddDate(0, 0, 7)

	_, err := s.service.CreateRental(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))

	// a different bike is fine
	req.Items = []dto.CreateRentalItemRequest{{BikeID: "bike_2", Quantity: 1}}
	_, err = s.service.CreateRental(s.GetContext(), req)
	s.NoError(err)
}

func (s *RentalServiceSuite) TestCancelledRentalFreesCalendar() {
	created := s.createRental()
	_, err := s.service.CancelRental(s.GetContext(), created.ID, dto.CancelRentalRequest{Reason: "changed plans"})
	s.NoError(err)

	// the slot is free again
	_, err = s.service.CreateRental(s.GetContext(), s.createRequest())
	s.NoError(err)
}

func (s *RentalServiceSuite) TestLifecycle() {
	created := s.createRental()

	confirmed, err := s.service.ConfirmRental(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.RentalStatusPending, confirmed.RentalStatus)

	started, err := s.service.StartRental(s.GetContext(), confirmed.ID)
	s.NoError(err)
	s.Equal(types.RentalStatusActive, started.RentalStatus)
	s.NotNil(started.Items[0].CheckedOutAt)

	completed, err := s.service.CheckOutRental(s.GetContext(), started.ID, dto.CheckOutRentalRequest{
		ActualReturnDate: started.ExpectedReturnDate,
		DamageLevel:      types.DamageLevelNone,
	})
	s.NoError(err)
	s.Equal(types.RentalStatusCompleted, completed.RentalStatus)
	s.Equal(types.DepositStatusReleased, completed.DepositStatus)
	s.True(completed.LateFeeAmount.IsZero())

	// each mutation bumped the stored version
	s.Greater(completed.Version, created.Version)
}

func (s *RentalServiceSuite) TestCheckOutAddsLateFee() {
	created := s.createRental()
	_, err := s.service.ConfirmRental(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.StartRental(s.GetContext(), created.ID)
	s.NoError(err)

	// 2h late with 30 min tolerance: 2 billable hours at the default 10/h
	completed, err := s.service.CheckOutRental(s.GetContext(), created.ID, dto.CheckOutRentalRequest{
		ActualReturnDate: created.ExpectedReturnDate.Add(2 * time.Hour),
		DamageLevel:      types.DamageLevelNone,
	})
	s.NoError(err)
	s.True(completed.LateFeeAmount.Equal(decimal.NewFromInt(20)), "got %s", completed.LateFeeAmount)
	s.True(completed.TotalAmount.Equal(decimal.NewFromInt(160)), "got %s", completed.TotalAmount)
}

func (s *RentalServiceSuite) TestCheckOutRetainsDepositForDamage() {
	s.NoError(s.GetStores().DepositConfigRepo.Create(s.GetContext(), &depositconfig.DepositRetentionConfig{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DEPOSIT_CONFIG),
		BikeID:            lo.ToPtr("bike_1"),
		MinorDamageAmount: decimal.NewFromInt(50),
		MajorDamageAmount: decimal.NewFromInt(150),
		TotalLossAmount:   decimal.NewFromInt(600),
		BaseModel:         types.GetDefaultBaseModel(s.GetContext()),
	}))

	created := s.createRental()
	_, err := s.service.ConfirmRental(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.StartRental(s.GetContext(), created.ID)
	s.NoError(err)

	completed, err := s.service.CheckOutRental(s.GetContext(), created.ID, dto.CheckOutRentalRequest{
		ActualReturnDate: created.ExpectedReturnDate,
		DamageLevel:      types.DamageLevelMajor,
	})
	s.NoError(err)
	s.Equal(types.DepositStatusPartial, completed.DepositStatus)
	s.Require().NotNil(completed.DepositRetained)
	s.True(completed.DepositRetained.Equal(decimal.NewFromInt(150)))
}

func (s *RentalServiceSuite) TestCheckOutTotalLossRetainsEverything() {
	created := s.createRental()
	_, err := s.service.ConfirmRental(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.StartRental(s.GetContext(), created.ID)
	s.NoError(err)

	// no retention config exists, the fail-safe keeps the full deposit
	completed, err := s.service.CheckOutRental(s.GetContext(), created.ID, dto.CheckOutRentalRequest{
		ActualReturnDate: created.ExpectedReturnDate,
		DamageLevel:      types.DamageLevelTotalLoss,
	})
	s.NoError(err)
	s.Equal(types.DepositStatusRetained, completed.DepositStatus)
	s.Require().NotNil(completed.DepositRetained)
	s.True(completed.DepositRetained.Equal(decimal.NewFromInt(200)))
}

func (s *RentalServiceSuite) TestCancelActiveRentalFails() {
	created := s.createRental()
	_, err := s.service.ConfirmRental(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.StartRental(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.CancelRental(s.GetContext(), created.ID, dto.CancelRentalRequest{Reason: "too late"})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *RentalServiceSuite) TestCustomDurationRental() {
	custom := &duration.DurationDefinition{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DURATION),
		Code:      "custom",
		Label:     "Custom",
		IsCustom:  true,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().DurationRepo.Create(s.GetContext(), custom))
	s.NoError(s.GetStores().RateRepo.Create(s.GetContext(), &rate.PricingRate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICING_RATE),
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     custom.ID,
		Price:          decimal.NewFromInt(25),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}))

	req := s.createRequest()
	req.DurationID = custom.ID
	req.CustomDays = lo.ToPtr(decimal.NewFromInt(3))
	req.ExpectedReturnDate = req.StartDate.AddDate(0, 0, 3)

	resp, err := s.service.CreateRental(s.GetContext(), req)
	s.NoError(err)
	// 25/day x 3 days
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(75)), "got %s", resp.TotalAmount)

	// omitting the day count is rejected
	req = s.createRequest()
	req.DurationID = custom.ID
	req.Items = []dto.CreateRentalItemRequest{{BikeID: "bike_9", Quantity: 1}}
	_, err = s.service.CreateRental(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RentalServiceSuite) TestGetUnknownRental() {
	_, err := s.service.GetRental(s.GetContext(), "rental_missing")
	s.True(ierr.IsNotFound(err))
}
