// Package wizard implements the three-step validation gate that controls
// forward navigation through trip creation: basic info, places and schedule,
// review. Forward moves are gated on per-step completeness predicates;
// backward moves are always free.
package wizard

import (
	"fmt"
	"strings"

	"github.com/tripdesk/backend/internal/domain"
)

// Step identifies a wizard step.
type Step int

const (
	StepBasicInfo Step = iota
	StepPlacesAndSchedule
	StepReview
)

// String returns the step name used in API responses and log lines.
func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepPlacesAndSchedule:
		return "places_and_schedule"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Gate is the state machine gating a single trip draft. It holds a
// reference to the trip being edited so predicates always see the
// latest edits.
type Gate struct {
	trip *domain.Trip
	step Step
}

// NewGate starts a gate at the basic-info step for the given trip.
func NewGate(trip *domain.Trip) *Gate {
	return &Gate{trip: trip, step: StepBasicInfo}
}

// Step returns the current step.
func (g *Gate) Step() Step {
	return g.step
}

// Next advances one step if the current step's predicate holds. On failure
// the step does not change and the returned error names every unmet
// condition so the UI can surface a single blocking message.
func (g *Gate) Next() error {
	switch g.step {
	case StepBasicInfo:
		if err := ValidateBasicInfo(*g.trip); err != nil {
			return err
		}
	case StepPlacesAndSchedule:
		if err := ValidateSchedule(*g.trip); err != nil {
			return err
		}
	case StepReview:
		return fmt.Errorf("wizard.Gate.Next: %w: already at the review step", domain.ErrValidation)
	}
	g.step++
	return nil
}

// Back moves one step backward. It is always permitted, performs no
// validation, and floors at the first step.
func (g *Gate) Back() {
	if g.step > StepBasicInfo {
		g.step--
	}
}

// CanSave reports whether the trip satisfies every forward predicate, i.e.
// the gate could logically reach the review step. The persistence gateway
// re-checks this before writing so a save can never bypass the wizard.
func (g *Gate) CanSave() error {
	if err := ValidateBasicInfo(*g.trip); err != nil {
		return err
	}
	return ValidateSchedule(*g.trip)
}

// ValidateBasicInfo is the 0 -> 1 predicate: non-empty name, both dates set
// and parseable, and startDate <= endDate. Date inversion returns the
// dedicated ErrDateRange sentinel; everything else wraps ErrValidation.
func ValidateBasicInfo(trip domain.Trip) error {
	var missing []string
	if strings.TrimSpace(trip.Name) == "" {
		missing = append(missing, "name is required")
	}
	if trip.StartDate == "" {
		missing = append(missing, "start date is required")
	}
	if trip.EndDate == "" {
		missing = append(missing, "end date is required")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(missing, "; "))
	}

	start, err := domain.ParseDayKey(trip.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date must be YYYY-MM-DD, got %q", domain.ErrValidation, trip.StartDate)
	}
	end, err := domain.ParseDayKey(trip.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date must be YYYY-MM-DD, got %q", domain.ErrValidation, trip.EndDate)
	}
	if start.After(end) {
		return fmt.Errorf("%w: %s > %s", domain.ErrDateRange, trip.StartDate, trip.EndDate)
	}
	return nil
}

// ValidateSchedule is the 1 -> 2 predicate: at least one stop across all days.
func ValidateSchedule(trip domain.Trip) error {
	if trip.StopCount() == 0 {
		return fmt.Errorf("%w: add at least one stop before continuing", domain.ErrValidation)
	}
	return nil
}
