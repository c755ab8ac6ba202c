package store

import (
	"context"
	"sync"

	"github.com/tripdesk/backend/internal/domain"
)

// Memory is an in-process TripStore. It backs unit tests and the demo
// configuration (STORE_BACKEND=memory); contents vanish with the process.
type Memory struct {
	mu    sync.Mutex
	trips []domain.Trip
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a deep copy of the stored list so callers can never mutate
// the store's state through shared maps or slices.
func (m *Memory) Load(ctx context.Context) ([]domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneTrips(m.trips), nil
}

// Store replaces the stored list with a deep copy of trips.
func (m *Memory) Store(ctx context.Context, trips []domain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = cloneTrips(trips)
	return nil
}

func cloneTrips(trips []domain.Trip) []domain.Trip {
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
