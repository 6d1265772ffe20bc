package duration

import "context"

// Repository provides read-only access to duration definitions plus the
// admin mutations. Persistence is implemented by the external storage layer.
type Repository interface {
	Create(ctx context.Context, d *DurationDefinition) error
	Get(ctx context.Context, id string) (*DurationDefinition, error)
	List(ctx context.Context) ([]*DurationDefinition, error)
	Update(ctx context.Context, d *DurationDefinition) error
}
