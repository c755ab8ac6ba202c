package share_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/share"
)

func intPtr(n int) *int { return &n }

// fullTrip exercises every field of the aggregate, including pointer and
// map fields, so the round-trip covers the whole wire shape.
func fullTrip() domain.Trip {
	return domain.Trip{
		Name:             "Coast Loop",
		ParticipantCount: intPtr(4),
		StartDate:        "2025-09-01",
		EndDate:          "2025-09-02",
		IsPublic:         true,
		StopsByDay: map[string][]domain.Stop{
			"2025-09-01": {
				{ID: 1, Kind: domain.KindPlace, PlaceID: "p-1", Name: "Aquarium", StartTime: "09:00", EndTime: "10:00"},
				{ID: 2, Kind: domain.KindLunch, Name: "Lunch", StartTime: "10:00", EndTime: "11:00", DurationMinutes: intPtr(45)},
			},
			"2025-09-02": {
				{ID: 1, Kind: domain.KindRest, Name: "Beach"},
			},
		},
		SelectedHotelByDay: map[string]string{"2025-09-01": "h-17"},
		PublicMeta:         &domain.PublicMeta{Description: "Two days on the coast", Contact: "trips@example.com"},
		CreatedAt:          time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := fullTrip()

	token, err := share.Encode(original)
	require.NoError(t, err)

	decoded, err := share.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestCodec_RoundTripEmptyTrip(t *testing.T) {
	token, err := share.Encode(domain.Trip{})
	require.NoError(t, err)

	decoded, err := share.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Trip{}, decoded)
}

// Tokens must survive verbatim in a URL query string.
func TestEncode_URLSafe(t *testing.T) {
	token, err := share.Encode(fullTrip())
	require.NoError(t, err)

	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestDecode_Empty(t *testing.T) {
	_, err := share.Decode("")
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestDecode_BadBase64(t *testing.T) {
	_, err := share.Decode("not~base64~at~all")
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestDecode_BadJSON(t *testing.T) {
	// Valid base64 wrapping something that is not a trip document.
	_, err := share.Decode("bm90IGpzb24")
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestDecode_Oversized(t *testing.T) {
	token := strings.Repeat("A", share.MaxTokenLen+1)
	_, err := share.Decode(token)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestDecode_TruncatedToken(t *testing.T) {
	token, err := share.Encode(fullTrip())
	require.NoError(t, err)

	_, err = share.Decode(token[:len(token)/2])
	assert.ErrorIs(t, err, domain.ErrDecode)
}
