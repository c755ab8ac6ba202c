package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/schedule"
	"github.com/tripdesk/backend/internal/wizard"
)

// TripSaver is the slice of TripService the draft service depends on.
type TripSaver interface {
	Save(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// BasicInfo carries the first wizard step's fields.
type BasicInfo struct {
	Name             string
	StartDate        string
	EndDate          string
	ParticipantCount *int
	IsPublic         bool
}

// DraftView is a read-only snapshot of a draft handed to the HTTP layer.
// Trip is a deep copy; mutating it never touches the draft.
type DraftView struct {
	ID   uuid.UUID
	Step wizard.Step
	Trip domain.Trip
}

// draft is a trip being assembled in the wizard. The gate shares the trip
// pointer so its predicates always see the latest edits.
type draft struct {
	trip *domain.Trip
	gate *wizard.Gate
}

// DraftService owns the in-memory wizard editing sessions. Drafts live only
// until saved or discarded; the durable store holds finished trips only.
// All mutations run under one mutex since HTTP handlers call in concurrently.
type DraftService struct {
	mu     sync.Mutex
	saver  TripSaver
	drafts map[uuid.UUID]*draft
}

// NewDraftService constructs a DraftService that saves finished drafts
// through the provided saver.
func NewDraftService(saver TripSaver) *DraftService {
	return &DraftService{saver: saver, drafts: make(map[uuid.UUID]*draft)}
}

// Create starts an empty draft at the basic-info step.
func (s *DraftService) Create() DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := &domain.Trip{}
	id := uuid.New()
	s.drafts[id] = &draft{trip: trip, gate: wizard.NewGate(trip)}
	return DraftView{ID: id, Step: wizard.StepBasicInfo, Trip: trip.Clone()}
}

// Get returns a snapshot of the draft.
func (s *DraftService) Get(id uuid.UUID) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(id)
}

// Next attempts the forward wizard transition. On a validation failure the
// step is unchanged and the error names the unmet conditions.
func (s *DraftService) Next(id uuid.UUID) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return DraftView{}, err
	}
	if err := d.gate.Next(); err != nil {
		return DraftView{}, fmt.Errorf("service.DraftService.Next: %w", err)
	}
	return s.view(id)
}

// Back moves one wizard step backward; always permitted.
func (s *DraftService) Back(id uuid.UUID) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return DraftView{}, err
	}
	d.gate.Back()
	return s.view(id)
}

// SetBasicInfo updates the first step's fields. The participant count, when
// present, must be positive.
func (s *DraftService) SetBasicInfo(id uuid.UUID, info BasicInfo) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return DraftView{}, err
	}
	if info.ParticipantCount != nil && *info.ParticipantCount < 1 {
		return DraftView{}, fmt.Errorf("service.DraftService.SetBasicInfo: %w: participant count must be positive", domain.ErrValidation)
	}
	d.trip.Name = info.Name
	d.trip.StartDate = info.StartDate
	d.trip.EndDate = info.EndDate
	d.trip.ParticipantCount = info.ParticipantCount
	d.trip.IsPublic = info.IsPublic
	return s.view(id)
}

// SetPublicMeta attaches the public description. It is only meaningful when
// the trip is public; storing it on a private trip is allowed but inert.
func (s *DraftService) SetPublicMeta(id uuid.UUID, meta domain.PublicMeta) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return DraftView{}, err
	}
	d.trip.PublicMeta = &meta
	return s.view(id)
}

// AddStop appends a stop to the given day, chaining its times to the day's
// last stop.
func (s *DraftService) AddStop(id uuid.UUID, day string, stop domain.Stop) (domain.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return domain.Stop{}, err
	}
	added, err := schedule.AppendStop(d.trip, day, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.DraftService.AddStop: %w", err)
	}
	return added, nil
}

// EditStopTimes applies optional start and end time edits to one stop.
// The start edit runs first, so an explicit end in the same request wins
// over any auto-corrected one.
func (s *DraftService) EditStopTimes(id uuid.UUID, day string, stopID int, newStart, newEnd *string) (domain.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return domain.Stop{}, err
	}
	stop, err := findStop(d.trip, day, stopID)
	if err != nil {
		return domain.Stop{}, err
	}
	if newStart != nil {
		if err := schedule.SetStartTime(stop, *newStart); err != nil {
			return domain.Stop{}, fmt.Errorf("service.DraftService.EditStopTimes: %w", err)
		}
	}
	if newEnd != nil {
		if err := schedule.SetEndTime(stop, *newEnd); err != nil {
			return domain.Stop{}, fmt.Errorf("service.DraftService.EditStopTimes: %w", err)
		}
	}
	return *stop, nil
}

// ReorderStops swaps two positions in a day's stop list without touching times.
func (s *DraftService) ReorderStops(id uuid.UUID, day string, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return err
	}
	if err := schedule.Reorder(d.trip, day, from, to); err != nil {
		return fmt.Errorf("service.DraftService.ReorderStops: %w", err)
	}
	return nil
}

// RechainDay runs the explicit re-chain repair on one day and returns the
// day's stops afterwards.
func (s *DraftService) RechainDay(id uuid.UUID, day string) ([]domain.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return nil, err
	}
	schedule.RechainDay(d.trip, day)
	out := make([]domain.Stop, len(d.trip.StopsByDay[day]))
	copy(out, d.trip.StopsByDay[day])
	return out, nil
}

// RemoveStop deletes a stop from a day's list.
func (s *DraftService) RemoveStop(id uuid.UUID, day string, stopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return err
	}
	if err := schedule.RemoveStop(d.trip, day, stopID); err != nil {
		return fmt.Errorf("service.DraftService.RemoveStop: %w", err)
	}
	return nil
}

// SelectHotel records the day's single hotel selection.
func (s *DraftService) SelectHotel(id uuid.UUID, day, hotelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return err
	}
	if err := schedule.SelectHotel(d.trip, day, hotelID); err != nil {
		return fmt.Errorf("service.DraftService.SelectHotel: %w", err)
	}
	return nil
}

// ClearHotel drops the day's hotel selection.
func (s *DraftService) ClearHotel(id uuid.UUID, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return err
	}
	schedule.ClearHotel(d.trip, day)
	return nil
}

// Save persists the draft through the trip saver and discards the session
// on success. The saver re-validates the terminal preconditions, so a draft
// that skipped the gate cannot reach the store.
func (s *DraftService) Save(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.get(id)
	if err != nil {
		return domain.Trip{}, err
	}
	saved, err := s.saver.Save(ctx, *d.trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.DraftService.Save: %w", err)
	}
	delete(s.drafts, id)
	return saved, nil
}

// Discard drops a draft without saving.
func (s *DraftService) Discard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return fmt.Errorf("service.DraftService.Discard: %w", domain.ErrNotFound)
	}
	delete(s.drafts, id)
	return nil
}

// get looks up a live draft. Callers hold the mutex.
func (s *DraftService) get(id uuid.UUID) (*draft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("service.DraftService: %w", domain.ErrNotFound)
	}
	return d, nil
}

// view builds a snapshot for the HTTP layer. Callers hold the mutex.
func (s *DraftService) view(id uuid.UUID) (DraftView, error) {
	d, err := s.get(id)
	if err != nil {
		return DraftView{}, err
	}
	return DraftView{ID: id, Step: d.gate.Step(), Trip: d.trip.Clone()}, nil
}

// findStop returns a pointer into the day's stop slice for in-place edits.
func findStop(trip *domain.Trip, day string, stopID int) (*domain.Stop, error) {
	stops := trip.StopsByDay[day]
	for i := range stops {
		if stops[i].ID == stopID {
			return &stops[i], nil
		}
	}
	return nil, fmt.Errorf("service.DraftService: stop: %w", domain.ErrNotFound)
}
