package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/schedule"
)

const day = "2025-09-01"

func intPtr(n int) *int { return &n }

// emptyTrip returns a trip whose range covers the test day.
func emptyTrip() *domain.Trip {
	return &domain.Trip{Name: "Coast Loop", StartDate: "2025-09-01", EndDate: "2025-09-02"}
}

func placeDraft(name string) domain.Stop {
	return domain.Stop{Kind: domain.KindPlace, Name: name, PlaceID: "p-" + name}
}

// ---- AppendStop ------------------------------------------------------------

// The first stop on a day has no anchor: both times stay unset.
func TestAppendStop_FirstStopHasNoTimes(t *testing.T) {
	trip := emptyTrip()

	stop, err := schedule.AppendStop(trip, day, placeDraft("Aquarium"))

	require.NoError(t, err)
	assert.Equal(t, 1, stop.ID)
	assert.Empty(t, stop.StartTime)
	assert.Empty(t, stop.EndTime)
}

// Setting the first stop's start anchors it; the end follows from the
// place default (60 minutes).
func TestAppendStop_ThenSetStart(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("Aquarium"))
	require.NoError(t, err)

	stop := &trip.StopsByDay[day][0]
	require.NoError(t, schedule.SetStartTime(stop, "09:00"))

	assert.Equal(t, "09:00", stop.StartTime)
	assert.Equal(t, "10:00", stop.EndTime)
}

// A stop appended after a timed stop starts exactly where it ends.
func TestAppendStop_ChainsToPreviousEnd(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("Aquarium"))
	require.NoError(t, err)
	require.NoError(t, schedule.SetStartTime(&trip.StopsByDay[day][0], "09:00"))

	b, err := schedule.AppendStop(trip, day, placeDraft("Old Town"))

	require.NoError(t, err)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, "11:00", b.EndTime)
}

// The chaining invariant holds across a whole sequence of appends with
// kind-specific default durations.
func TestAppendStop_ChainAcrossKinds(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("Aquarium"))
	require.NoError(t, err)
	require.NoError(t, schedule.SetStartTime(&trip.StopsByDay[day][0], "09:00"))

	_, err = schedule.AppendStop(trip, day, domain.Stop{Kind: domain.KindBreak, Name: "Coffee"})
	require.NoError(t, err)
	_, err = schedule.AppendStop(trip, day, domain.Stop{Kind: domain.KindLunch, Name: "Lunch"})
	require.NoError(t, err)
	_, err = schedule.AppendStop(trip, day, domain.Stop{Kind: domain.KindRest, Name: "Rest"})
	require.NoError(t, err)

	stops := trip.StopsByDay[day]
	require.Len(t, stops, 4)
	for i := 1; i < len(stops); i++ {
		assert.Equal(t, stops[i-1].EndTime, stops[i].StartTime, "stop %d", i)
	}
	// 09:00+60 → 10:00+15 → 10:15+60 → 11:15+30 → 11:45
	assert.Equal(t, "11:45", stops[3].EndTime)
}

// A duration override on the previous stop feeds the chain when that stop
// has a start but no explicit end.
func TestAppendStop_ChainsThroughDurationOverride(t *testing.T) {
	trip := emptyTrip()
	draft := placeDraft("Aquarium")
	draft.DurationMinutes = intPtr(90)
	_, err := schedule.AppendStop(trip, day, draft)
	require.NoError(t, err)

	first := &trip.StopsByDay[day][0]
	first.StartTime = "09:00" // raw anchor, no end computed yet

	b, err := schedule.AppendStop(trip, day, placeDraft("Old Town"))
	require.NoError(t, err)
	assert.Equal(t, "10:30", b.StartTime)
}

// Appending to a day outside the current range widens the range first.
func TestAppendStop_WidensRange(t *testing.T) {
	trip := &domain.Trip{Name: "No Dates Yet"}

	_, err := schedule.AppendStop(trip, "2025-09-05", placeDraft("Aquarium"))

	require.NoError(t, err)
	assert.Equal(t, "2025-09-05", trip.StartDate)
	assert.Equal(t, "2025-09-05", trip.EndDate)
}

func TestAppendStop_UnknownKind(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, domain.Stop{Kind: "museum", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppendStop_BadDayKey(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, "tomorrow", placeDraft("Aquarium"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// IDs are a per-day arena: max+1 within the day, restarting at 1 per day.
func TestAppendStop_IDsArePerDay(t *testing.T) {
	trip := emptyTrip()
	a, err := schedule.AppendStop(trip, "2025-09-01", placeDraft("A"))
	require.NoError(t, err)
	b, err := schedule.AppendStop(trip, "2025-09-01", placeDraft("B"))
	require.NoError(t, err)
	c, err := schedule.AppendStop(trip, "2025-09-02", placeDraft("C"))
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 1, c.ID)
}

// After a removal the next ID continues from the surviving maximum.
func TestNextStopID_AfterRemoval(t *testing.T) {
	trip := emptyTrip()
	for _, n := range []string{"A", "B", "C"} {
		_, err := schedule.AppendStop(trip, day, placeDraft(n))
		require.NoError(t, err)
	}
	require.NoError(t, schedule.RemoveStop(trip, day, 3))

	d, err := schedule.AppendStop(trip, day, placeDraft("D"))
	require.NoError(t, err)
	assert.Equal(t, 3, d.ID)
}

// ---- SetStartTime ----------------------------------------------------------

// An end that still lies after the new start is preserved.
func TestSetStartTime_KeepsValidEnd(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace, StartTime: "09:00", EndTime: "11:00"}

	require.NoError(t, schedule.SetStartTime(&stop, "09:30"))

	assert.Equal(t, "09:30", stop.StartTime)
	assert.Equal(t, "11:00", stop.EndTime)
}

// An end now at or before the new start is stale and auto-corrected forward
// using the duration the stop had before the edit.
func TestSetStartTime_CorrectsStaleEnd(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace, StartTime: "09:00", EndTime: "10:00"}

	require.NoError(t, schedule.SetStartTime(&stop, "10:00"))

	assert.Equal(t, "10:00", stop.StartTime)
	assert.Equal(t, "11:00", stop.EndTime)
}

func TestSetStartTime_ComputesMissingEnd(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindBreak}

	require.NoError(t, schedule.SetStartTime(&stop, "14:00"))

	assert.Equal(t, "14:15", stop.EndTime)
}

func TestSetStartTime_OverrideDrivesRecompute(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace, DurationMinutes: intPtr(20)}

	require.NoError(t, schedule.SetStartTime(&stop, "09:00"))

	assert.Equal(t, "09:20", stop.EndTime)
}

func TestSetStartTime_Invalid(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace}
	err := schedule.SetStartTime(&stop, "9am")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, stop.StartTime)
}

// ---- SetEndTime ------------------------------------------------------------

// The end is taken verbatim, even before the start. Documented behavior:
// no ordering validation happens here.
func TestSetEndTime_VerbatimEvenWhenInverted(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace, StartTime: "10:00", EndTime: "11:00"}

	require.NoError(t, schedule.SetEndTime(&stop, "09:30"))

	assert.Equal(t, "09:30", stop.EndTime)
	assert.Equal(t, "10:00", stop.StartTime)
}

func TestSetEndTime_Invalid(t *testing.T) {
	stop := domain.Stop{Kind: domain.KindPlace}
	err := schedule.SetEndTime(&stop, "24:99")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Reorder ---------------------------------------------------------------

// Reorder swaps positions; times stay attached to their original stops.
func TestReorder_SwapsWithoutRechaining(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("A"))
	require.NoError(t, err)
	require.NoError(t, schedule.SetStartTime(&trip.StopsByDay[day][0], "09:00"))
	_, err = schedule.AppendStop(trip, day, placeDraft("B"))
	require.NoError(t, err)

	require.NoError(t, schedule.Reorder(trip, day, 0, 1))

	stops := trip.StopsByDay[day]
	assert.Equal(t, "B", stops[0].Name)
	assert.Equal(t, "10:00", stops[0].StartTime, "B keeps its chained time")
	assert.Equal(t, "A", stops[1].Name)
	assert.Equal(t, "09:00", stops[1].StartTime, "A keeps its original time")
}

func TestReorder_OutOfRange(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("A"))
	require.NoError(t, err)

	assert.ErrorIs(t, schedule.Reorder(trip, day, 0, 5), domain.ErrValidation)
	assert.ErrorIs(t, schedule.Reorder(trip, day, -1, 0), domain.ErrValidation)
}

// ---- RemoveStop ------------------------------------------------------------

// Removal keeps the remaining stops' times untouched.
func TestRemoveStop_NoRechain(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("A"))
	require.NoError(t, err)
	require.NoError(t, schedule.SetStartTime(&trip.StopsByDay[day][0], "09:00"))
	_, err = schedule.AppendStop(trip, day, placeDraft("B"))
	require.NoError(t, err)

	require.NoError(t, schedule.RemoveStop(trip, day, 1))

	stops := trip.StopsByDay[day]
	require.Len(t, stops, 1)
	assert.Equal(t, "B", stops[0].Name)
	assert.Equal(t, "10:00", stops[0].StartTime)
}

func TestRemoveStop_NotFound(t *testing.T) {
	trip := emptyTrip()
	assert.ErrorIs(t, schedule.RemoveStop(trip, day, 7), domain.ErrNotFound)
}

// ---- RechainDay ------------------------------------------------------------

// The explicit repair closes the gap a reorder left behind.
func TestRechainDay_RepairsAfterReorder(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("A"))
	require.NoError(t, err)
	require.NoError(t, schedule.SetStartTime(&trip.StopsByDay[day][0], "09:00"))
	_, err = schedule.AppendStop(trip, day, domain.Stop{Kind: domain.KindBreak, Name: "B"})
	require.NoError(t, err)
	require.NoError(t, schedule.Reorder(trip, day, 0, 1))

	schedule.RechainDay(trip, day)

	stops := trip.StopsByDay[day]
	// B leads with its original 10:00 anchor; A is re-anchored to B's end.
	assert.Equal(t, "10:00", stops[0].StartTime)
	assert.Equal(t, "10:15", stops[0].EndTime)
	assert.Equal(t, "10:15", stops[1].StartTime)
	assert.Equal(t, "11:15", stops[1].EndTime)
}

// Stops with no timing anywhere stay untouched.
func TestRechainDay_AllUntimed(t *testing.T) {
	trip := emptyTrip()
	_, err := schedule.AppendStop(trip, day, placeDraft("A"))
	require.NoError(t, err)
	_, err = schedule.AppendStop(trip, day, placeDraft("B"))
	require.NoError(t, err)

	schedule.RechainDay(trip, day)

	for _, s := range trip.StopsByDay[day] {
		assert.Empty(t, s.StartTime)
		assert.Empty(t, s.EndTime)
	}
}
