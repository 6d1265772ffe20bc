package rental

import (
	"context"
	"time"
)

// Repository persists rental aggregates. Update must compare the aggregate's
// Version against the stored row and fail with a version-conflict error on
// mismatch, so concurrent check-out/cancel on the same rental cannot race.
type Repository interface {
	Create(ctx context.Context, r *Rental) error
	Get(ctx context.Context, id string) (*Rental, error)
	Update(ctx context.Context, r *Rental) error
	List(ctx context.Context) ([]*Rental, error)

	// ListOverlapping returns calendar-blocking rentals that contain any of
	// the given bikes and overlap the [start, end) range.
	ListOverlapping(ctx context.Context, bikeIDs []string, start, end time.Time) ([]*Rental, error)
}
