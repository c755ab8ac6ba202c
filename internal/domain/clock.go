package domain

import (
	"fmt"
	"time"
)

// ClockFormat is the layout for stop start/end times.
const ClockFormat = "15:04"

const minutesPerDay = 24 * 60

// ParseClock converts a "15:04" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes-since-midnight as "15:04", wrapping modulo 24h.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AdvanceClock returns start advanced by the given whole-minute duration.
// Durations crossing midnight wrap into the same-day clock ("23:30" + 60 =
// "00:30"); the result carries no date component, so callers that care about
// day boundaries must check for the wrap themselves.
func AdvanceClock(start string, minutes int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(m + minutes), nil
}

// MinutesBetween returns end minus start in minutes. The result is negative
// when end is before start; callers decide whether that is meaningful.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
