// Package schedule implements the stop chain scheduler: the logic that
// assigns start/end times so each new stop begins exactly when the previous
// stop on the same day ends, plus the per-day stop list operations
// (reorder, remove, explicit re-chain).
//
// Operations mutate the Trip aggregate in place; no I/O happens here.
package schedule

import (
	"fmt"

	"github.com/tripdesk/backend/internal/domain"
)

// NextStopID returns the ID for a stop appended to stops: max(existing)+1,
// or 1 when the list is empty. IDs are unique only within one day's list.
func NextStopID(stops []domain.Stop) int {
	max := 0
	for _, s := range stops {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// chainEnd returns the end time a follower should anchor to: the stop's
// explicit end time, else start plus effective duration, else "" when the
// stop carries no timing at all.
func chainEnd(s domain.Stop) string {
	if s.EndTime != "" {
		return s.EndTime
	}
	if s.StartTime != "" {
		end, err := domain.AdvanceClock(s.StartTime, s.EffectiveDuration())
		if err == nil {
			return end
		}
	}
	return ""
}

// AppendStop adds draft to the end of the given day's list and returns the
// stored stop. The draft supplies kind, name, place reference, and an
// optional duration override; ID and times are assigned here.
//
// The new stop starts where the day's last stop ends (unset when no prior
// stop carries a time) and ends after its kind's default duration. When day
// lies outside the trip's current date range the range is widened to include
// it — the documented fallback for stops added before any range exists.
func AppendStop(trip *domain.Trip, day string, draft domain.Stop) (domain.Stop, error) {
	if !draft.Kind.Valid() {
		return domain.Stop{}, fmt.Errorf("schedule.AppendStop: %w: unknown stop kind %q", domain.ErrValidation, draft.Kind)
	}
	if _, err := domain.ParseDayKey(day); err != nil {
		return domain.Stop{}, fmt.Errorf("schedule.AppendStop: %w: day must be YYYY-MM-DD, got %q", domain.ErrValidation, day)
	}
	if !trip.ContainsDay(day) {
		trip.WidenRange(day)
	}
	if trip.StopsByDay == nil {
		trip.StopsByDay = make(map[string][]domain.Stop)
	}

	stops := trip.StopsByDay[day]
	stop := draft
	stop.ID = NextStopID(stops)
	stop.StartTime = ""
	stop.EndTime = ""
	if len(stops) > 0 {
		stop.StartTime = chainEnd(stops[len(stops)-1])
	}
	if stop.StartTime != "" {
		end, err := domain.AdvanceClock(stop.StartTime, stop.Kind.DefaultDuration())
		if err != nil {
			return domain.Stop{}, fmt.Errorf("schedule.AppendStop: %w", err)
		}
		stop.EndTime = end
	}

	trip.StopsByDay[day] = append(stops, stop)
	return stop, nil
}

// SetStartTime sets the stop's start time and conditionally recomputes its
// end: only when no end was set, or the existing end is now at or before the
// new start (a stale end is auto-corrected forward). An end that still lies
// after the new start is preserved untouched.
//
// The recomputed end uses the effective duration the stop had before the
// edit, so an explicit DurationMinutes or a previously timed span survives.
func SetStartTime(stop *domain.Stop, newStart string) error {
	startMin, err := domain.ParseClock(newStart)
	if err != nil {
		return fmt.Errorf("schedule.SetStartTime: %w", err)
	}

	dur := stop.EffectiveDuration()
	recompute := stop.EndTime == ""
	if !recompute {
		endMin, err := domain.ParseClock(stop.EndTime)
		recompute = err != nil || endMin <= startMin
	}

	stop.StartTime = newStart
	if recompute {
		end, err := domain.AdvanceClock(newStart, dur)
		if err != nil {
			return fmt.Errorf("schedule.SetStartTime: %w", err)
		}
		stop.EndTime = end
	}
	return nil
}

// SetEndTime sets the stop's end time verbatim. No ordering check against
// the start time is performed; RechainDay is the explicit repair operation.
func SetEndTime(stop *domain.Stop, newEnd string) error {
	if _, err := domain.ParseClock(newEnd); err != nil {
		return fmt.Errorf("schedule.SetEndTime: %w", err)
	}
	stop.EndTime = newEnd
	return nil
}

// Reorder swaps the stops at from and to in the day's list. Times are NOT
// recomputed — they stay attached to their original stops. That is the
// documented behavior, not an oversight; callers wanting consistent timing
// afterwards invoke RechainDay explicitly.
func Reorder(trip *domain.Trip, day string, from, to int) error {
	stops := trip.StopsByDay[day]
	if from < 0 || from >= len(stops) || to < 0 || to >= len(stops) {
		return fmt.Errorf("schedule.Reorder: %w: index out of range", domain.ErrValidation)
	}
	stops[from], stops[to] = stops[to], stops[from]
	return nil
}

// RemoveStop deletes the stop with the given ID from the day's list.
// Remaining stops keep their times; no re-chaining happens.
func RemoveStop(trip *domain.Trip, day string, stopID int) error {
	stops := trip.StopsByDay[day]
	for i, s := range stops {
		if s.ID == stopID {
			trip.StopsByDay[day] = append(stops[:i], stops[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("schedule.RemoveStop: %w", domain.ErrNotFound)
}

// RechainDay re-anchors every stop after the first to its predecessor's
// computed end and recomputes each re-anchored stop's end from the effective
// duration it had going in. Stops before the first timed stop are left
// untouched. This is an explicit opt-in; nothing in the scheduler calls it
// implicitly.
func RechainDay(trip *domain.Trip, day string) {
	stops := trip.StopsByDay[day]
	for i := 1; i < len(stops); i++ {
		prevEnd := chainEnd(stops[i-1])
		if prevEnd == "" {
			continue
		}
		dur := stops[i].EffectiveDuration()
		stops[i].StartTime = prevEnd
		if end, err := domain.AdvanceClock(prevEnd, dur); err == nil {
			stops[i].EndTime = end
		}
	}
}
