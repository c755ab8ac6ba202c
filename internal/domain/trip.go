// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies and is imported by every other
// internal package (schedule, wizard, share, store, service, handler).
package domain

import "time"

// PublicMeta is the optional description shown on a publicly shared trip.
// It is only meaningful when Trip.IsPublic is true.
type PublicMeta struct {
	Description string `json:"description,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// Trip is the root aggregate: metadata, per-day ordered stop lists, and
// per-day hotel selections. It is persisted and shared as one unit.
//
// StartDate and EndDate are day keys ("2006-01-02"); an empty string means
// the date has not been chosen yet. Day keys used in StopsByDay and
// SelectedHotelByDay must lie within [StartDate, EndDate].
type Trip struct {
	Name             string `json:"name"`
	ParticipantCount *int   `json:"participantCount,omitempty"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	IsPublic         bool   `json:"isPublic"`

	// StopsByDay maps a day key to that day's ordered stop list.
	// Stop IDs are unique only within a single day's list.
	StopsByDay map[string][]Stop `json:"stopsByDay,omitempty"`

	// SelectedHotelByDay maps a day key to the chosen hotel's ID.
	// At most one hotel per day; the trip stores only the identifier,
	// never the hotel data itself.
	SelectedHotelByDay map[string]string `json:"selectedHotelByDay,omitempty"`

	PublicMeta *PublicMeta `json:"publicMeta,omitempty"`

	// CreatedAt is set once when the trip is first saved and never mutated.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// StopCount returns the total number of stops across all days.
func (t Trip) StopCount() int {
	n := 0
	for _, stops := range t.StopsByDay {
		n += len(stops)
	}
	return n
}

// Days returns the trip's inclusive day-key sequence, or nil when either
// date is unset or unparseable.
func (t Trip) Days() []string {
	return DayKeys(t.StartDate, t.EndDate)
}

// ContainsDay reports whether day lies within [StartDate, EndDate].
// Day keys are ISO dates, so the comparison is plain string ordering.
func (t Trip) ContainsDay(day string) bool {
	if t.StartDate == "" || t.EndDate == "" {
		return false
	}
	return t.StartDate <= day && day <= t.EndDate
}

// WidenRange grows [StartDate, EndDate] to include day. Used as the fallback
// when a stop is added before any date range exists, or for a day outside it.
func (t *Trip) WidenRange(day string) {
	if t.StartDate == "" || day < t.StartDate {
		t.StartDate = day
	}
	if t.EndDate == "" || day > t.EndDate {
		t.EndDate = day
	}
}

// Clone returns a deep copy of the trip. Maps, stop slices, and pointer
// fields are copied so mutating the clone never aliases the original.
func (t Trip) Clone() Trip {
	out := t
	if t.ParticipantCount != nil {
		pc := *t.ParticipantCount
		out.ParticipantCount = &pc
	}
	if t.PublicMeta != nil {
		pm := *t.PublicMeta
		out.PublicMeta = &pm
	}
	if t.StopsByDay != nil {
		out.StopsByDay = make(map[string][]Stop, len(t.StopsByDay))
		for day, stops := range t.StopsByDay {
			copied := make([]Stop, len(stops))
			for i, s := range stops {
				copied[i] = s.clone()
			}
			out.StopsByDay[day] = copied
		}
	}
	if t.SelectedHotelByDay != nil {
		out.SelectedHotelByDay = make(map[string]string, len(t.SelectedHotelByDay))
		for day, id := range t.SelectedHotelByDay {
			out.SelectedHotelByDay[day] = id
		}
	}
	return out
}
