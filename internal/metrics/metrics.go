// Package metrics collects and exposes Prometheus metrics for the trip
// planner API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service and handler layers record through.
// A nil-safe Noop implementation exists for tests and wiring without metrics.
type Recorder interface {
	RecordTripSaved()
	RecordShareIssued()
	RecordShareDecodeFailure()
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	tripsSaved      prometheus.Counter
	sharesIssued    prometheus.Counter
	shareDecodeFail prometheus.Counter
	httpStatus      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		tripsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripdesk_trips_saved_total",
			Help: "Total trips appended to the durable store.",
		}),
		sharesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripdesk_share_tokens_issued_total",
			Help: "Total share tokens encoded.",
		}),
		shareDecodeFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripdesk_share_decode_failures_total",
			Help: "Total share tokens that failed to decode.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripdesk_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.tripsSaved,
		c.sharesIssued,
		c.shareDecodeFail,
		c.httpStatus,
	)

	return c
}

// RecordTripSaved counts a successful append to the durable store.
func (c *Collector) RecordTripSaved() { c.tripsSaved.Inc() }

// RecordShareIssued counts an encoded share token.
func (c *Collector) RecordShareIssued() { c.sharesIssued.Inc() }

// RecordShareDecodeFailure counts a share token that failed to decode.
func (c *Collector) RecordShareDecodeFailure() { c.shareDecodeFail.Inc() }

// RecordHTTPStatus counts a response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler serving the /metrics scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Recorder that discards everything.
type Noop struct{}

func (Noop) RecordTripSaved()            {}
func (Noop) RecordShareIssued()          {}
func (Noop) RecordShareDecodeFailure()   {}
func (Noop) RecordHTTPStatus(status int) {}
