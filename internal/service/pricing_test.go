package service

import (
	"testing"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/discountrule"
	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/domain/rate"
	ierr "github.com/fbo94/veloflott/internal/errors"
	"github.com/fbo94/veloflott/internal/testutil"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PricingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PricingService
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceSuite))
}

func (s *PricingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPricingService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *PricingServiceSuite) createDuration(code string, days *int, hours *int, isCustom bool) *duration.DurationDefinition {
	d := &duration.DurationDefinition{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DURATION),
		Code:      code,
		Label:     code,
		Days:      days,
		Hours:     hours,
		IsCustom:  isCustom,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().DurationRepo.Create(s.GetContext(), d))
	return d
}

func (s *PricingServiceSuite) createRate(durationID string, price decimal.Decimal) *rate.PricingRate {
	r := &rate.PricingRate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICING_RATE),
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     durationID,
		Price:          price,
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().RateRepo.Create(s.GetContext(), r))
	return r
}

func (s *PricingServiceSuite) createRule(r *discountrule.DiscountRule) *discountrule.DiscountRule {
	r.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_RULE)
	r.BaseModel = types.GetDefaultBaseModel(s.GetContext())
	s.NoError(s.GetStores().DiscountRuleRepo.Create(s.GetContext(), r))
	return r
}

func (s *PricingServiceSuite) calculate(req dto.CalculatePricingRequest) *dto.PricingCalculationResponse {
	resp, err := s.service.Calculate(s.GetContext(), req)
	s.NoError(err)
	s.NotNil(resp)
	return resp
}

func (s *PricingServiceSuite) TestWeeklyRateIsPerUnit() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})

	// a 100 weekly rate over 7 days is 100, not 700
	s.True(resp.Days.Equal(decimal.NewFromInt(7)))
	s.True(resp.BasePrice.Equal(decimal.NewFromInt(100)), "got %s", resp.BasePrice)
	s.True(resp.FinalPrice.Equal(decimal.NewFromInt(100)))
	s.True(resp.PricePerDay.Equal(decimal.NewFromInt(100).Div(decimal.NewFromInt(7))))
}

func (s *PricingServiceSuite) TestTwoWeeksAreTwoUnits() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
		CustomDays:     lo.ToPtr(decimal.NewFromInt(14)),
	})

	s.True(resp.BasePrice.Equal(decimal.NewFromInt(200)), "got %s", resp.BasePrice)
}

func (s *PricingServiceSuite) TestCustomDurationBillsDaily() {
	custom := s.createDuration("custom", nil, nil, true)
	s.createRate(custom.ID, decimal.NewFromInt(40))

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     custom.ID,
		CustomDays:     lo.ToPtr(decimal.NewFromInt(3)),
	})

	s.True(resp.BasePrice.Equal(decimal.NewFromInt(120)), "got %s", resp.BasePrice)
	s.True(resp.PricePerDay.Equal(decimal.NewFromInt(40)))
}

func (s *PricingServiceSuite) TestCustomDurationRequiresDayCount() {
	custom := s.createDuration("custom", nil, nil, true)
	s.createRate(custom.ID, decimal.NewFromInt(40))

	_, err := s.service.Calculate(s.GetContext(), dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     custom.ID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PricingServiceSuite) TestUnknownDurationOrRate() {
	_, err := s.service.Calculate(s.GetContext(), dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     "dur_missing",
	})
	s.True(ierr.IsNotFound(err))

	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	_, err = s.service.Calculate(s.GetContext(), dto.CalculatePricingRequest{
		CategoryID:     "cat_other",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})
	s.True(ierr.IsNotFound(err))
}

func (s *PricingServiceSuite) TestDiscountStacking() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	s.createRule(&discountrule.DiscountRule{
		Label:        "loyalty",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
		IsCumulative: true,
		Priority:     5,
	})
	s.createRule(&discountrule.DiscountRule{
		Label:        "voucher",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypeFixed,
		Value:        decimal.NewFromInt(5),
		IsCumulative: true,
		Priority:     1,
	})
	s.createRule(&discountrule.DiscountRule{
		Label:    "summer",
		MinDays:  lo.ToPtr(1),
		Type:     types.DiscountTypePercentage,
		Value:    decimal.NewFromInt(20),
		Priority: 10,
	})
	s.createRule(&discountrule.DiscountRule{
		Label:    "flash sale",
		MinDays:  lo.ToPtr(1),
		Type:     types.DiscountTypePercentage,
		Value:    decimal.NewFromInt(50),
		Priority: 3,
	})

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})

	// both cumulative rules apply, plus only the highest-priority
	// non-cumulative one; the 50% flash sale is skipped
	s.Len(resp.DiscountsApplied, 3)
	s.True(resp.TotalDiscountAmount.Equal(decimal.NewFromInt(35)), "got %s", resp.TotalDiscountAmount)
	s.True(resp.FinalPrice.Equal(decimal.NewFromInt(65)), "got %s", resp.FinalPrice)

	labels := lo.Map(resp.DiscountsApplied, func(d dto.AppliedDiscount, _ int) string { return d.Label })
	s.NotContains(labels, "flash sale")
}

func (s *PricingServiceSuite) TestDiscountsComputedAgainstOriginalBase() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	s.createRule(&discountrule.DiscountRule{
		Label:        "first",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
		IsCumulative: true,
		Priority:     2,
	})
	s.createRule(&discountrule.DiscountRule{
		Label:        "second",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
		IsCumulative: true,
		Priority:     1,
	})

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})

	// 10 + 10, not 10 + 9
	s.True(resp.TotalDiscountAmount.Equal(decimal.NewFromInt(20)), "got %s", resp.TotalDiscountAmount)
}

func (s *PricingServiceSuite) TestFinalPriceFlooredAtZero() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	s.createRule(&discountrule.DiscountRule{
		Label:        "everything off",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(100),
		IsCumulative: true,
		Priority:     1,
	})
	s.createRule(&discountrule.DiscountRule{
		Label:        "extra",
		MinDays:      lo.ToPtr(1),
		Type:         types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
		IsCumulative: true,
		Priority:     2,
	})

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})

	s.True(resp.FinalPrice.IsZero(), "got %s", resp.FinalPrice)
}

func (s *PricingServiceSuite) TestMinDaysThresholdFilters() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	s.createRule(&discountrule.DiscountRule{
		Label:    "long rental",
		MinDays:  lo.ToPtr(10),
		Type:     types.DiscountTypePercentage,
		Value:    decimal.NewFromInt(15),
		Priority: 1,
	})

	// 7 days does not reach the 10-day threshold
	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})
	s.Empty(resp.DiscountsApplied)

	// 14 days does
	resp = s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
		CustomDays:     lo.ToPtr(decimal.NewFromInt(14)),
	})
	s.Len(resp.DiscountsApplied, 1)
	s.True(resp.FinalPrice.Equal(decimal.NewFromInt(170)), "got %s", resp.FinalPrice)
}

func (s *PricingServiceSuite) TestMinDurationThreshold() {
	week := s.createDuration("week", lo.ToPtr(7), nil, false)
	threeDays := s.createDuration("three_days", lo.ToPtr(3), nil, false)
	s.createRate(week.ID, decimal.NewFromInt(100))

	s.createRule(&discountrule.DiscountRule{
		Label:         "from three days",
		MinDurationID: lo.ToPtr(threeDays.ID),
		Type:          types.DiscountTypePercentage,
		Value:         decimal.NewFromInt(15),
		Priority:      1,
	})

	resp := s.calculate(dto.CalculatePricingRequest{
		CategoryID:     "cat_vtt",
		PricingClassID: "class_std",
		DurationID:     week.ID,
	})

	s.Len(resp.DiscountsApplied, 1)
	s.True(resp.FinalPrice.Equal(decimal.NewFromInt(85)), "got %s", resp.FinalPrice)
}
