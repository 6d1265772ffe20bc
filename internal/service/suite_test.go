package service

import (
	"github.com/fbo94/veloflott/internal/testutil"
)

// newTestServiceParams wires the shared service dependencies over the
// suite's per-test stores.
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:            s.GetLogger(),
		Config:            s.GetConfig(),
		Cache:             s.GetCache(),
		DurationRepo:      stores.DurationRepo,
		RateRepo:          stores.RateRepo,
		DiscountRuleRepo:  stores.DiscountRuleRepo,
		SettingsRepo:      stores.SettingsRepo,
		DepositConfigRepo: stores.DepositConfigRepo,
		RentalRepo:        stores.RentalRepo,
	}
}
