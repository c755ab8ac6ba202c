package schedule

import (
	"fmt"

	"github.com/tripdesk/backend/internal/domain"
)

// SelectHotel records hotelID as the single hotel selection for day,
// replacing any previous choice. Only the identifier is stored; the hotel
// data itself lives in the external search provider.
func SelectHotel(trip *domain.Trip, day, hotelID string) error {
	if hotelID == "" {
		return fmt.Errorf("schedule.SelectHotel: %w: hotel id is required", domain.ErrValidation)
	}
	if _, err := domain.ParseDayKey(day); err != nil {
		return fmt.Errorf("schedule.SelectHotel: %w: day must be YYYY-MM-DD, got %q", domain.ErrValidation, day)
	}
	if trip.SelectedHotelByDay == nil {
		trip.SelectedHotelByDay = make(map[string]string)
	}
	trip.SelectedHotelByDay[day] = hotelID
	return nil
}

// ClearHotel drops the hotel selection for day, if any.
func ClearHotel(trip *domain.Trip, day string) {
	delete(trip.SelectedHotelByDay, day)
}

// DayDuration sums the effective durations of the day's stops, in minutes.
func DayDuration(trip *domain.Trip, day string) int {
	total := 0
	for _, s := range trip.StopsByDay[day] {
		total += s.EffectiveDuration()
	}
	return total
}

// TripDuration sums the effective durations of every stop on every day.
func TripDuration(trip *domain.Trip) int {
	total := 0
	for day := range trip.StopsByDay {
		total += DayDuration(trip, day)
	}
	return total
}
