package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tripdesk/backend/internal/metrics"
)

// NewStatusRecorder returns a middleware that counts every response's status
// code in the metrics collector.
func NewStatusRecorder(rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			rec.RecordHTTPStatus(ww.Status())
		})
	}
}
