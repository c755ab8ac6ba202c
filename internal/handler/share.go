package handler

import (
	"net/http"

	"github.com/tripdesk/backend/internal/share"
)

// ShareTrip handles GET /trips/{index}/share: encodes the trip into a
// portable token and returns it with a ready-to-use link.
//
// The token is issued regardless of isPublic — whether to expose the share
// action for a private trip is the caller's decision, not the gateway's.
func (s *Server) ShareTrip(w http.ResponseWriter, r *http.Request) {
	index, ok := tripIndex(w, r)
	if !ok {
		return
	}
	trip, err := s.trips.Get(r.Context(), index)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := share.Encode(trip)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.rec.RecordShareIssued()
	respond(w, http.StatusOK, ShareResponse{
		Token: token,
		URL:   s.baseURL + "/shared?token=" + token,
	})
}

// SharedTrip handles GET /shared?token=...: the read-only viewer entry
// point. A trip decoded from the token needs no access to the durable store.
//
// Decode failures are swallowed into a 204: the viewer falls back to the
// normal non-shared view rather than surfacing an error for a mangled link.
func (s *Server) SharedTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := share.Decode(r.URL.Query().Get("token"))
	if err != nil {
		s.rec.RecordShareDecodeFailure()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond(w, http.StatusOK, trip)
}
