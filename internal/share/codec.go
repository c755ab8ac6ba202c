// Package share encodes a full trip aggregate into an opaque token suitable
// for a URL query parameter, and decodes it back. Any viewer holding the
// token can render a read-only trip without access to the durable store.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/tripdesk/backend/internal/domain"
)

// MaxTokenLen caps accepted token length. The encoding applies no
// compression, so a very large itinerary can outgrow practical URL limits;
// the cap also keeps an attacker-supplied query parameter from ballooning
// memory during decode.
const MaxTokenLen = 16 << 10

// Encode serializes the trip to JSON and wraps it in unpadded URL-safe
// base64. The encoding is deterministic and lossless: Decode(Encode(t))
// yields t for any trip.
func Encode(trip domain.Trip) (string, error) {
	raw, err := json.Marshal(trip)
	if err != nil {
		return "", fmt.Errorf("share.Encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode is the inverse of Encode. Malformed, empty, or oversized tokens
// return an error wrapping domain.ErrDecode; callers are expected to discard
// the token silently and fall back to the non-shared view.
func Decode(token string) (domain.Trip, error) {
	if token == "" {
		return domain.Trip{}, fmt.Errorf("share.Decode: %w: empty token", domain.ErrDecode)
	}
	if len(token) > MaxTokenLen {
		return domain.Trip{}, fmt.Errorf("share.Decode: %w: token exceeds %d bytes", domain.ErrDecode, MaxTokenLen)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("share.Decode: %w: %v", domain.ErrDecode, err)
	}
	var trip domain.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("share.Decode: %w: %v", domain.ErrDecode, err)
	}
	return trip, nil
}
