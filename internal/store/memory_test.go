package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/store"
)

// tripFixture returns a trip with every collection populated so copy
// semantics are actually exercised. Callers override fields as needed.
func tripFixture(name string) domain.Trip {
	return domain.Trip{
		Name:      name,
		StartDate: "2025-09-01",
		EndDate:   "2025-09-02",
		StopsByDay: map[string][]domain.Stop{
			"2025-09-01": {{ID: 1, Kind: domain.KindPlace, Name: "Aquarium", StartTime: "09:00", EndTime: "10:00"}},
		},
		SelectedHotelByDay: map[string]string{"2025-09-01": "h-1"},
	}
}

func TestMemory_EmptyLoad(t *testing.T) {
	m := store.NewMemory()

	trips, err := m.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, trips, "empty store must load as an empty list, not nil")
	assert.Empty(t, trips)
}

func TestMemory_StoreThenLoad(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	want := []domain.Trip{tripFixture("A"), tripFixture("B")}
	require.NoError(t, m.Store(ctx, want))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// The store must not alias caller-held maps or slices in either direction.
func TestMemory_CopiesOnStore(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	trips := []domain.Trip{tripFixture("A")}
	require.NoError(t, m.Store(ctx, trips))

	trips[0].Name = "mutated"
	trips[0].StopsByDay["2025-09-01"][0].Name = "mutated"

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "Aquarium", got[0].StopsByDay["2025-09-01"][0].Name)
}

func TestMemory_CopiesOnLoad(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Store(ctx, []domain.Trip{tripFixture("A")}))

	first, err := m.Load(ctx)
	require.NoError(t, err)
	first[0].StopsByDay["2025-09-01"][0].Name = "mutated"
	first[0].SelectedHotelByDay["2025-09-01"] = "h-999"

	second, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aquarium", second[0].StopsByDay["2025-09-01"][0].Name)
	assert.Equal(t, "h-1", second[0].SelectedHotelByDay["2025-09-01"])
}

func TestMemory_StoreReplaces(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Store(ctx, []domain.Trip{tripFixture("A"), tripFixture("B")}))

	require.NoError(t, m.Store(ctx, []domain.Trip{tripFixture("C")}))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Name)
}
