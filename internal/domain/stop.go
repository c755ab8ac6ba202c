package domain

// StopKind classifies a stop as a place visit or a fixed activity.
type StopKind string

const (
	KindPlace StopKind = "place"
	KindLunch StopKind = "lunch"
	KindBreak StopKind = "break"
	KindRest  StopKind = "rest"
)

// Valid reports whether k is one of the four known stop kinds.
func (k StopKind) Valid() bool {
	switch k {
	case KindPlace, KindLunch, KindBreak, KindRest:
		return true
	}
	return false
}

// DefaultDuration returns the kind's default length in minutes.
// Unknown kinds fall back to the place default.
func (k StopKind) DefaultDuration() int {
	switch k {
	case KindLunch:
		return 60
	case KindBreak:
		return 15
	case KindRest:
		return 30
	default:
		return 60
	}
}

// Stop is a single scheduled unit within one day of a trip.
//
// ID is unique only within the owning day's list. PlaceID is a weak
// reference: the stop stores the identifier and a display name copied at
// insertion time; the place may no longer exist in the source catalog and
// the name is not re-synced if the place renames.
//
// StartTime and EndTime are "15:04" clock strings; the empty string means
// unset. DurationMinutes, when non-nil, overrides any time-derived duration.
type Stop struct {
	ID              int      `json:"id"`
	Kind            StopKind `json:"kind"`
	PlaceID         string   `json:"placeId,omitempty"`
	Name            string   `json:"name"`
	StartTime       string   `json:"startTime,omitempty"`
	EndTime         string   `json:"endTime,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// EffectiveDuration resolves the stop's length in minutes by priority:
// explicit DurationMinutes, then EndTime-StartTime when both parse to a
// positive span, then the kind default.
func (s Stop) EffectiveDuration() int {
	if s.DurationMinutes != nil {
		return *s.DurationMinutes
	}
	if s.StartTime != "" && s.EndTime != "" {
		if span, err := MinutesBetween(s.StartTime, s.EndTime); err == nil && span > 0 {
			return span
		}
	}
	return s.Kind.DefaultDuration()
}

// clone copies the stop including its optional duration override.
func (s Stop) clone() Stop {
	out := s
	if s.DurationMinutes != nil {
		d := *s.DurationMinutes
		out.DurationMinutes = &d
	}
	return out
}
