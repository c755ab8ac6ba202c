package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripdesk/backend/internal/domain"
)

// CreateDraft handles POST /drafts: starts an empty wizard session.
func (s *Server) CreateDraft(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusCreated, draftToResponse(s.drafts.Create()))
}

// GetDraft handles GET /drafts/{id}.
func (s *Server) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	view, err := s.drafts.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, draftToResponse(view))
}

// DiscardDraft handles DELETE /drafts/{id}.
func (s *Server) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	if err := s.drafts.Discard(id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NextStep handles POST /drafts/{id}/next. A blocked transition returns 422
// with the unmet conditions; the draft's step is unchanged.
func (s *Server) NextStep(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	view, err := s.drafts.Next(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, draftToResponse(view))
}

// BackStep handles POST /drafts/{id}/back. Always succeeds on a live draft.
func (s *Server) BackStep(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	view, err := s.drafts.Back(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, draftToResponse(view))
}

// SetBasicInfo handles PUT /drafts/{id}/basic-info.
func (s *Server) SetBasicInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	var req BasicInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	view, err := s.drafts.SetBasicInfo(id, req.toDomain())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, draftToResponse(view))
}

// SetPublicMeta handles PUT /drafts/{id}/public-meta.
func (s *Server) SetPublicMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	var req struct {
		Description string `json:"description"`
		Contact     string `json:"contact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	view, err := s.drafts.SetPublicMeta(id, domain.PublicMeta{Description: req.Description, Contact: req.Contact})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, draftToResponse(view))
}

// AddStop handles POST /drafts/{id}/days/{day}/stops.
func (s *Server) AddStop(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	var req StopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	draft, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	stop, err := s.drafts.AddStop(id, chi.URLParam(r, "day"), draft)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusCreated, stop)
}

// EditStopTimes handles PATCH /drafts/{id}/days/{day}/stops/{stopID}.
func (s *Server) EditStopTimes(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	stopID, ok := stopIDParam(w, r)
	if !ok {
		return
	}
	var req StopTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	stop, err := s.drafts.EditStopTimes(id, chi.URLParam(r, "day"), stopID, req.StartTime, req.EndTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, stop)
}

// ReorderStops handles POST /drafts/{id}/days/{day}/stops/reorder.
func (s *Server) ReorderStops(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	if err := s.drafts.ReorderStops(id, chi.URLParam(r, "day"), req.From, req.To); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RechainDay handles POST /drafts/{id}/days/{day}/rechain: the explicit
// opt-in repair that re-anchors the day's stops after manual edits or
// reordering.
func (s *Server) RechainDay(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	stops, err := s.drafts.RechainDay(id, chi.URLParam(r, "day"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, stops)
}

// RemoveStop handles DELETE /drafts/{id}/days/{day}/stops/{stopID}.
func (s *Server) RemoveStop(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	stopID, ok := stopIDParam(w, r)
	if !ok {
		return
	}
	if err := s.drafts.RemoveStop(id, chi.URLParam(r, "day"), stopID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectHotel handles PUT /drafts/{id}/days/{day}/hotel.
func (s *Server) SelectHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	var req HotelSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body")
		return
	}
	if err := s.drafts.SelectHotel(id, chi.URLParam(r, "day"), req.HotelID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearHotel handles DELETE /drafts/{id}/days/{day}/hotel.
func (s *Server) ClearHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	if err := s.drafts.ClearHotel(id, chi.URLParam(r, "day")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveDraft handles POST /drafts/{id}/save: the wizard's terminal action.
func (s *Server) SaveDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	trip, err := s.drafts.Save(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond(w, http.StatusCreated, trip)
}

// draftID parses the {id} path parameter; a malformed UUID addresses nothing.
func draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "draft not found")
		return uuid.UUID{}, false
	}
	return id, true
}

// stopIDParam parses the {stopID} path parameter.
func stopIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "stopID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "stop not found")
		return 0, false
	}
	return id, true
}
