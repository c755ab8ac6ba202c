// Package handler implements the HTTP layer for the trip planner API.
// Handlers are methods on Server, split into resource-specific files
// (trip.go, draft.go, share.go) that all share the same struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/metrics"
	"github.com/tripdesk/backend/internal/service"
)

// TripServicer defines the persistence-gateway operations the handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention "accept interfaces, return concrete types" and lets
// handler tests inject a mock without a database.
type TripServicer interface {
	Save(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Get(ctx context.Context, index int) (domain.Trip, error)
	Delete(ctx context.Context, index int) error
	Replace(ctx context.Context, index int, trip domain.Trip) (domain.Trip, error)
}

// DraftServicer defines the wizard-session operations the handlers depend on.
type DraftServicer interface {
	Create() service.DraftView
	Get(id uuid.UUID) (service.DraftView, error)
	Next(id uuid.UUID) (service.DraftView, error)
	Back(id uuid.UUID) (service.DraftView, error)
	SetBasicInfo(id uuid.UUID, info service.BasicInfo) (service.DraftView, error)
	SetPublicMeta(id uuid.UUID, meta domain.PublicMeta) (service.DraftView, error)
	AddStop(id uuid.UUID, day string, stop domain.Stop) (domain.Stop, error)
	EditStopTimes(id uuid.UUID, day string, stopID int, newStart, newEnd *string) (domain.Stop, error)
	ReorderStops(id uuid.UUID, day string, from, to int) error
	RechainDay(id uuid.UUID, day string) ([]domain.Stop, error)
	RemoveStop(id uuid.UUID, day string, stopID int) error
	SelectHotel(id uuid.UUID, day, hotelID string) error
	ClearHotel(id uuid.UUID, day string) error
	Save(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Discard(id uuid.UUID) error
}

// Server holds the handler dependencies. BaseURL is the public origin used
// when building share links.
type Server struct {
	trips   TripServicer
	drafts  DraftServicer
	baseURL string
	rec     metrics.Recorder
}

// NewServer constructs the Server with all its dependencies.
// Pass metrics.Noop{} when no collector is wired.
func NewServer(trips TripServicer, drafts DraftServicer, baseURL string, rec metrics.Recorder) *Server {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Server{trips: trips, drafts: drafts, baseURL: baseURL, rec: rec}
}

// Routes returns the chi router for the full API surface. Middleware is
// applied by the caller (main.go) so tests can mount the bare routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.Health)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/{index}", s.GetTrip)
		r.Put("/{index}", s.ReplaceTrip)
		r.Delete("/{index}", s.DeleteTrip)
		r.Get("/{index}/share", s.ShareTrip)
	})

	r.Get("/shared", s.SharedTrip)

	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", s.CreateDraft)
		r.Get("/{id}", s.GetDraft)
		r.Delete("/{id}", s.DiscardDraft)
		r.Post("/{id}/next", s.NextStep)
		r.Post("/{id}/back", s.BackStep)
		r.Put("/{id}/basic-info", s.SetBasicInfo)
		r.Put("/{id}/public-meta", s.SetPublicMeta)
		r.Post("/{id}/save", s.SaveDraft)

		r.Route("/{id}/days/{day}", func(r chi.Router) {
			r.Post("/stops", s.AddStop)
			r.Post("/stops/reorder", s.ReorderStops)
			r.Post("/rechain", s.RechainDay)
			r.Patch("/stops/{stopID}", s.EditStopTimes)
			r.Delete("/stops/{stopID}", s.RemoveStop)
			r.Put("/hotel", s.SelectHotel)
			r.Delete("/hotel", s.ClearHotel)
		})
	})

	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
