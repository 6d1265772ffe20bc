package service

import (
	"testing"

	"github.com/fbo94/veloflott/internal/api/dto"
	"github.com/fbo94/veloflott/internal/domain/depositconfig"
	"github.com/fbo94/veloflott/internal/testutil"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DepositRetentionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DepositRetentionService
}

func TestDepositRetentionService(t *testing.T) {
	suite.Run(t, new(DepositRetentionServiceSuite))
}

func (s *DepositRetentionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDepositRetentionService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *DepositRetentionServiceSuite) createConfig(bikeID, pricingClassID, categoryID *string, minor, major, totalLoss int64) {
	cfg := &depositconfig.DepositRetentionConfig{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DEPOSIT_CONFIG),
		BikeID:            bikeID,
		PricingClassID:    pricingClassID,
		CategoryID:        categoryID,
		MinorDamageAmount: decimal.NewFromInt(minor),
		MajorDamageAmount: decimal.NewFromInt(major),
		TotalLossAmount:   decimal.NewFromInt(totalLoss),
		BaseModel:         types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().DepositConfigRepo.Create(s.GetContext(), cfg))
}

func (s *DepositRetentionServiceSuite) calculate(req dto.DepositRetentionRequest) *dto.DepositRetentionResponse {
	resp, err := s.service.Calculate(s.GetContext(), req)
	s.NoError(err)
	return resp
}

func (s *DepositRetentionServiceSuite) TestNoDamageRetainsNothing() {
	resp := s.calculate(dto.DepositRetentionRequest{
		BikeID:        "bike_1",
		CategoryID:    "cat_vtt",
		DamageLevel:   types.DamageLevelNone,
		DepositAmount: decimal.NewFromInt(200),
	})

	s.True(resp.RetentionAmount.IsZero())
	s.True(resp.RefundAmount.Equal(decimal.NewFromInt(200)))
	s.Nil(resp.ConfigSource)
}

func (s *DepositRetentionServiceSuite) TestHierarchyBikeWins() {
	s.createConfig(lo.ToPtr("bike_1"), nil, nil, 10, 50, 300)
	s.createConfig(nil, lo.ToPtr("class_std"), nil, 20, 80, 400)
	s.createConfig(nil, nil, lo.ToPtr("cat_vtt"), 30, 120, 500)

	resp := s.calculate(dto.DepositRetentionRequest{
		BikeID:         "bike_1",
		PricingClassID: lo.ToPtr("class_std"),
		CategoryID:     "cat_vtt",
		DamageLevel:    types.DamageLevelMajor,
		DepositAmount:  decimal.NewFromInt(200),
	})

	s.True(resp.RetentionAmount.Equal(decimal.NewFromInt(50)), "got %s", resp.RetentionAmount)
	s.Equal("bike", *resp.ConfigSource)
}

func (s *DepositRetentionServiceSuite) TestHierarchyClassThenCategory() {
	s.createConfig(nil, lo.ToPtr("class_std"), nil, 20, 80, 400)
	s.createConfig(nil, nil, lo.ToPtr("cat_vtt"), 30, 120, 500)

	resp := s.calculate(dto.DepositRetentionRequest{
		BikeID:         "bike_other",
		PricingClassID: lo.ToPtr("class_std"),
		CategoryID:     "cat_vtt",
		DamageLevel:    types.DamageLevelMinor,
		DepositAmount:  decimal.NewFromInt(200),
	})
	s.True(resp.RetentionAmount.Equal(decimal.NewFromInt(20)))
	s.Equal("pricing_class", *resp.ConfigSource)

	// without a pricing class the category config applies
	resp = s.calculate(dto.DepositRetentionRequest{
		BikeID:        "bike_other",
		CategoryID:    "cat_vtt",
		DamageLevel:   types.DamageLevelMinor,
		DepositAmount: decimal.NewFromInt(200),
	})
	s.True(resp.RetentionAmount.Equal(decimal.NewFromInt(30)))
	s.Equal("category", *resp.ConfigSource)
}

func (s *DepositRetentionServiceSuite) TestDefaultFullRetention() {
	resp := s.calculate(dto.DepositRetentionRequest{
		BikeID:        "bike_unknown",
		CategoryID:    "cat_unknown",
		DamageLevel:   types.DamageLevelMinor,
		DepositAmount: decimal.NewFromInt(200),
	})

	// fail-safe toward the operator: no config anywhere keeps the deposit
	s.True(resp.RetentionAmount.Equal(decimal.NewFromInt(200)))
	s.True(resp.RefundAmount.IsZero())
	s.Equal(dto.ConfigSourceDefaultFullRetention, *resp.ConfigSource)
}

func (s *DepositRetentionServiceSuite) TestRetentionCappedAtDeposit() {
	s.createConfig(lo.ToPtr("bike_1"), nil, nil, 10, 50, 500)

	resp := s.calculate(dto.DepositRetentionRequest{
		BikeID:        "bike_1",
		CategoryID:    "cat_vtt",
		DamageLevel:   types.DamageLevelTotalLoss,
		DepositAmount: decimal.NewFromInt(200),
	})

	s.True(resp.RetentionAmount.Equal(decimal.NewFromInt(200)))
	s.True(resp.RefundAmount.IsZero())
}

func (s *DepositRetentionServiceSuite) TestConservation() {
	s.createConfig(lo.ToPtr("bike_1"), nil, nil, 10, 50, 500)

	deposit := decimal.NewFromInt(200)
	for _, level := range []types.DamageLevel{
		types.DamageLevelNone,
		types.DamageLevelMinor,
		types.DamageLevelMajor,
		types.DamageLevelTotalLoss,
	} {
		resp := s.calculate(dto.DepositRetentionRequest{
			BikeID:        "bike_1",
			CategoryID:    "cat_vtt",
			DamageLevel:   level,
			DepositAmount: deposit,
		})
		s.True(resp.RetentionAmount.Add(resp.RefundAmount).Equal(deposit),
			"retention + refund must equal the deposit for %s", level)
	}
}
