package depositconfig

import "context"

// Repository provides access to deposit retention configs. The per-target
// lookups fail with a not-found error when no published config targets the
// given id; the hierarchy resolution lives in the service.
type Repository interface {
	Create(ctx context.Context, c *DepositRetentionConfig) error
	Get(ctx context.Context, id string) (*DepositRetentionConfig, error)
	GetByBikeID(ctx context.Context, bikeID string) (*DepositRetentionConfig, error)
	GetByPricingClassID(ctx context.Context, pricingClassID string) (*DepositRetentionConfig, error)
	GetByCategoryID(ctx context.Context, categoryID string) (*DepositRetentionConfig, error)
	List(ctx context.Context) ([]*DepositRetentionConfig, error)
	Update(ctx context.Context, c *DepositRetentionConfig) error
}
