package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ListTrips handles GET /trips. Order is insertion order; trips are
// addressed by their list position.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips: a direct save of a complete trip payload,
// bypassing the draft wizard. The service applies the same terminal
// preconditions the wizard would.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	trip, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	saved, err := s.trips.Save(r.Context(), trip)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusCreated, saved)
}

// GetTrip handles GET /trips/{index}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	index, ok := tripIndex(w, r)
	if !ok {
		return
	}
	trip, err := s.trips.Get(r.Context(), index)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, trip)
}

// ReplaceTrip handles PUT /trips/{index}: the caller-owned update built on
// the append-only store primitive.
func (s *Server) ReplaceTrip(w http.ResponseWriter, r *http.Request) {
	index, ok := tripIndex(w, r)
	if !ok {
		return
	}
	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	trip, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	updated, err := s.trips.Replace(r.Context(), index, trip)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{index}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	index, ok := tripIndex(w, r)
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), index); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tripIndex parses the {index} path parameter. A non-numeric or negative
// value addresses nothing, so it maps to 404 rather than 422.
func tripIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return 0, false
	}
	return index, true
}
