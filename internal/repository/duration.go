package repository

import (
	"context"
	"sort"

	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/types"
)

type durationRepository struct {
	store *InMemoryStore[duration.DurationDefinition]
}

func NewInMemoryDurationRepository() duration.Repository {
	return &durationRepository{store: NewInMemoryStore[duration.DurationDefinition]()}
}

func (r *durationRepository) Create(ctx context.Context, d *duration.DurationDefinition) error {
	return r.store.Create(ctx, d.ID, d)
}

func (r *durationRepository) Get(ctx context.Context, id string) (*duration.DurationDefinition, error) {
	return r.store.Get(ctx, id)
}

func (r *durationRepository) List(ctx context.Context) ([]*duration.DurationDefinition, error) {
	durations, err := r.store.List(ctx, func(d *duration.DurationDefinition) bool {
		return d.Status == types.StatusPublished
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(durations, func(i, j int) bool {
		return durations[i].SortOrder < durations[j].SortOrder
	})
	return durations, nil
}

func (r *durationRepository) Update(ctx context.Context, d *duration.DurationDefinition) error {
	return r.store.Update(ctx, d.ID, d)
}
