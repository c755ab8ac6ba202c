// Package store contains the durable trip-list storage for the trip planner.
// The whole saved-trip collection lives in a single named slot holding one
// JSON document; Load and Store move the entire list at once. An absent slot
// reads as an empty list.
//
// The Load-then-Store cycle is not atomic across two calls. Callers that
// append or delete (the service layer) must serialize the full cycle behind
// their own mutex.
package store

import (
	"context"

	"github.com/tripdesk/backend/internal/domain"
)

// TripStore is the durable key-value slot behind the persistence gateway.
// The service layer depends on this interface, not a concrete
// implementation, so unit tests can swap in the in-memory store.
type TripStore interface {
	// Load returns every saved trip in insertion order. A slot that has
	// never been written reads as an empty, non-nil slice.
	Load(ctx context.Context) ([]domain.Trip, error)

	// Store replaces the slot's contents with trips.
	Store(ctx context.Context, trips []domain.Trip) error
}
