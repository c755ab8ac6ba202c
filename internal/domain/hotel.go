package domain

// Hotel is read-only reference data supplied by an external hotel search.
// Trips never own hotels — they store only the ID. Rating, Vicinity, and
// Price are opaque display data as far as the core is concerned.
//
// AvailableFrom and AvailableTo are optional day keys; an absent bound means
// the hotel is available on that side without limit.
type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating,omitempty"`
	Vicinity      string  `json:"vicinity,omitempty"`
	Price         float64 `json:"price,omitempty"`
	AvailableFrom string  `json:"availableFrom,omitempty"`
	AvailableTo   string  `json:"availableTo,omitempty"`
}

// AvailableOn reports whether the hotel can be booked on the given day.
// Both bounds absent means always available. Comparison is date-only; an
// unparseable bound is treated as absent, an unparseable day as unavailable.
func (h Hotel) AvailableOn(day string) bool {
	if h.AvailableFrom == "" && h.AvailableTo == "" {
		return true
	}
	d, err := ParseDayKey(day)
	if err != nil {
		return false
	}
	if h.AvailableFrom != "" {
		if from, err := ParseDayKey(h.AvailableFrom); err == nil && d.Before(from) {
			return false
		}
	}
	if h.AvailableTo != "" {
		if to, err := ParseDayKey(h.AvailableTo); err == nil && d.After(to) {
			return false
		}
	}
	return true
}

// FilterAvailable returns the hotels available on day, preserving input
// order. It only filters — no ranking or best-fit tie-break is performed.
// Always returns a non-nil slice so callers can safely range over it.
func FilterAvailable(hotels []Hotel, day string) []Hotel {
	out := []Hotel{}
	for _, h := range hotels {
		if h.AvailableOn(day) {
			out = append(out, h)
		}
	}
	return out
}
