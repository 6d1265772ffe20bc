package repository

import (
	"context"
	"time"

	"github.com/fbo94/veloflott/internal/domain/rental"
	ierr "github.com/fbo94/veloflott/internal/errors"
)

type rentalRepository struct {
	store *InMemoryStore[rental.Rental]
}

func NewInMemoryRentalRepository() rental.Repository {
	store := NewInMemoryStore[rental.Rental]().WithClone(cloneRental)
	return &rentalRepository{store: store}
}

// cloneRental deep-copies the aggregate including its owned lines, so a
// caller mutating a loaded rental never leaks into the store.
func cloneRental(r *rental.Rental) *rental.Rental {
	copied := *r
	copied.Items = make([]*rental.RentalItem, len(r.Items))
	for i, item := range r.Items {
		itemCopy := *item
		copied.Items[i] = &itemCopy
	}
	copied.Equipments = make([]*rental.RentalEquipment, len(r.Equipments))
	for i, eq := range r.Equipments {
		eqCopy := *eq
		copied.Equipments[i] = &eqCopy
	}
	if r.Metadata != nil {
		copied.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			copied.Metadata[k] = v
		}
	}
	return &copied
}

func (repo *rentalRepository) Create(ctx context.Context, r *rental.Rental) error {
	return repo.store.Create(ctx, r.ID, r)
}

func (repo *rentalRepository) Get(ctx context.Context, id string) (*rental.Rental, error) {
	return repo.store.Get(ctx, id)
}

// Update persists the aggregate guarded by optimistic version comparison:
// the incoming version must match the stored one, and the write bumps it.
// Two concurrent check-out or cancel calls on the same rental cannot both
// succeed.
func (repo *rentalRepository) Update(ctx context.Context, r *rental.Rental) error {
	err := repo.store.Mutate(ctx, r.ID, func(stored *rental.Rental) (*rental.Rental, error) {
		if stored.Version != r.Version {
			return nil, ierr.NewErrorf("rental %s was modified concurrently", r.ID).
				WithHint("The rental was changed by another request, please reload and retry").
				WithReportableDetails(map[string]any{
					"rental_id":        r.ID,
					"expected_version": r.Version,
					"stored_version":   stored.Version,
				}).
				Mark(ierr.ErrVersionConflict)
		}
		updated := cloneRental(r)
		updated.Version = r.Version + 1
		return updated, nil
	})
	if err != nil {
		return err
	}
	r.Version++
	return nil
}

func (repo *rentalRepository) List(ctx context.Context) ([]*rental.Rental, error) {
	return repo.store.List(ctx, nil)
}

// ListOverlapping returns rentals in a calendar-blocking status whose period
// intersects [start, end) and which include any of the given bikes.
func (repo *rentalRepository) ListOverlapping(ctx context.Context, bikeIDs []string, start, end time.Time) ([]*rental.Rental, error) {
	wanted := make(map[string]struct{}, len(bikeIDs))
	for _, id := range bikeIDs {
		wanted[id] = struct{}{}
	}

	return repo.store.List(ctx, func(r *rental.Rental) bool {
		if !r.RentalStatus.BlocksCalendar() {
			return false
		}
		if !r.StartDate.Before(end) || !start.Before(r.ExpectedReturnDate) {
			return false
		}
		for _, item := range r.Items {
			if _, ok := wanted[item.BikeID]; ok {
				return true
			}
		}
		return false
	})
}
