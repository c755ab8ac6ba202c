package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/backend/internal/middleware"
)

func doFrom(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestRateLimiter_WithinBurst_Passes verifies that up to perMinute requests
// in a burst all pass.
func TestRateLimiter_WithinBurst_Passes(t *testing.T) {
	rl := middleware.NewRateLimiter(5)
	defer rl.Stop()
	h := rl.Middleware()(trivialHandler)

	for i := 0; i < 5; i++ {
		rec := doFrom(h, "192.0.2.1:1234")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

// TestRateLimiter_OverBurst_Returns429 verifies that the request after the
// burst is rejected with 429 and a Retry-After header.
func TestRateLimiter_OverBurst_Returns429(t *testing.T) {
	rl := middleware.NewRateLimiter(3)
	defer rl.Stop()
	h := rl.Middleware()(trivialHandler)

	for i := 0; i < 3; i++ {
		doFrom(h, "192.0.2.1:1234")
	}
	rec := doFrom(h, "192.0.2.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

// TestRateLimiter_ClientsAreIndependent verifies that exhausting one client's
// bucket does not affect another client.
func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := middleware.NewRateLimiter(2)
	defer rl.Stop()
	h := rl.Middleware()(trivialHandler)

	for i := 0; i < 3; i++ {
		doFrom(h, "192.0.2.1:1234")
	}
	rec := doFrom(h, "192.0.2.2:1234")

	assert.Equal(t, http.StatusOK, rec.Code)
}
