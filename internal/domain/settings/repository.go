package settings

import "context"

// Repository stores one settings row per scope. GetByScope looks up the
// exact (tenant, site) pair only; the fallback chain lives in the service.
type Repository interface {
	Upsert(ctx context.Context, s *RentalSettings) error
	GetByScope(ctx context.Context, tenantID, siteID *string) (*RentalSettings, error)
	List(ctx context.Context) ([]*RentalSettings, error)
}
