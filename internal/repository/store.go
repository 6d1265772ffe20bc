package repository

import (
	"context"
	"sync"

	ierr "github.com/fbo94/veloflott/internal/errors"
)

// InMemoryStore is a thread-safe generic store backing the in-memory
// repository implementations. Copies are the caller's concern: stores for
// aggregates with owned children install a clone function so readers never
// alias writer state.
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	clone func(*T) *T
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]*T),
		clone: func(item *T) *T {
			copied := *item
			return &copied
		},
	}
}

// WithClone replaces the default shallow copy with a custom clone function.
func (s *InMemoryStore[T]) WithClone(clone func(*T) *T) *InMemoryStore[T] {
	s.clone = clone
	return s
}

func (s *InMemoryStore[T]) Create(_ context.Context, id string, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("item already exists with id %s", id).
			WithHint("An item with this identifier already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	s.items[id] = s.clone(item)
	return nil
}

func (s *InMemoryStore[T]) Get(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ierr.NewErrorf("item not found with id %s", id).
			WithHint("The requested item does not exist").
			Mark(ierr.ErrNotFound)
	}
	return s.clone(item), nil
}

func (s *InMemoryStore[T]) Update(_ context.Context, id string, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ierr.NewErrorf("item not found with id %s", id).
			WithHint("The requested item does not exist").
			Mark(ierr.ErrNotFound)
	}
	s.items[id] = s.clone(item)
	return nil
}

// Upsert writes unconditionally.
func (s *InMemoryStore[T]) Upsert(_ context.Context, id string, item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = s.clone(item)
}

// List returns every item matching filter, in arbitrary order. A nil filter
// matches everything.
func (s *InMemoryStore[T]) List(_ context.Context, filter func(*T) bool) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*T, 0, len(s.items))
	for _, item := range s.items {
		if filter == nil || filter(item) {
			results = append(results, s.clone(item))
		}
	}
	return results, nil
}

// FindOne returns the first item matching filter, iteration order is
// unspecified so filters are expected to be selective.
func (s *InMemoryStore[T]) FindOne(_ context.Context, filter func(*T) bool) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if filter(item) {
			return s.clone(item), nil
		}
	}
	return nil, ierr.NewError("item not found").
		WithHint("No item matches the given criteria").
		Mark(ierr.ErrNotFound)
}

// Mutate applies fn to the stored item under the write lock, so compare and
// swap sequences are atomic.
func (s *InMemoryStore[T]) Mutate(_ context.Context, id string, fn func(stored *T) (*T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.items[id]
	if !exists {
		return ierr.NewErrorf("item not found with id %s", id).
			WithHint("The requested item does not exist").
			Mark(ierr.ErrNotFound)
	}
	updated, err := fn(s.clone(stored))
	if err != nil {
		return err
	}
	s.items[id] = s.clone(updated)
	return nil
}

// Clear drops everything, used between tests.
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*T)
}
