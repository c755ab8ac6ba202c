// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate store
// calls. No SQL and no HTTP live here — services depend on the store
// interface, not an implementation.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/metrics"
	"github.com/tripdesk/backend/internal/store"
	"github.com/tripdesk/backend/internal/wizard"
)

// TripService is the trip persistence gateway. Every operation runs a full
// load -> mutate -> store cycle against the single durable slot; the mutex
// serializes those cycles because the two store calls are not atomic
// together (the underlying slot only guarantees per-call atomicity).
type TripService struct {
	mu    sync.Mutex
	store store.TripStore
	rec   metrics.Recorder
	now   func() time.Time
}

// NewTripService constructs a TripService backed by the provided store.
// Pass metrics.Noop{} when no collector is wired.
func NewTripService(s store.TripStore, rec metrics.Recorder) *TripService {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &TripService{store: s, rec: rec, now: time.Now}
}

// Save validates the trip against the wizard's terminal preconditions
// (name, valid ordered dates, at least one stop), stamps CreatedAt once,
// and appends it to the durable list.
//
// Save is append-only: it never merges with an existing record, so saving
// an edited copy of an already-saved trip produces a second entry. Callers
// that want replace semantics use Replace.
//
// Validation runs before any store access, so a failed save leaves the
// stored list untouched.
func (s *TripService) Save(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := wizard.ValidateBasicInfo(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	if err := wizard.ValidateSchedule(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = s.now().UTC().Truncate(time.Second)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	if err := s.store.Store(ctx, append(trips, trip)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	s.rec.RecordTripSaved()
	return trip, nil
}

// List returns all saved trips in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Get returns the trip at the given list position.
// Returns domain.ErrNotFound when index is out of range.
func (s *TripService) Get(ctx context.Context, index int) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	if index < 0 || index >= len(trips) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
	}
	return trips[index], nil
}

// Delete removes the trip at the given list position.
// Returns domain.ErrNotFound when index is out of range.
func (s *TripService) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if index < 0 || index >= len(trips) {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrNotFound)
	}
	if err := s.store.Store(ctx, append(trips[:index], trips[index+1:]...)); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Replace swaps the trip at index for the given one in a single store write,
// preserving the original CreatedAt and list position. This is the
// caller-owned "update" built on the append-only primitive: remove the old
// record and insert the new one under one mutex hold.
func (s *TripService) Replace(ctx context.Context, index int, trip domain.Trip) (domain.Trip, error) {
	if err := wizard.ValidateBasicInfo(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", err)
	}
	if err := wizard.ValidateSchedule(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", err)
	}
	if index < 0 || index >= len(trips) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", domain.ErrNotFound)
	}
	trip.CreatedAt = trips[index].CreatedAt
	trips[index] = trip
	if err := s.store.Store(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", err)
	}
	return trip, nil
}
