package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tripdesk/backend/internal/domain"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respond writes v as a JSON response with the given status.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	respond(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service error onto the HTTP taxonomy:
// not found -> 404, date range -> 422 date_range, validation -> 422
// validation_error, anything else -> 500 with a generic body (the real
// error is for the logs, not the client).
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrDateRange):
		writeError(w, http.StatusUnprocessableEntity, "date_range", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// unwrapMessage strips the wrapping prefixes from a sentinel error chain,
// e.g. "service.TripService.Save: validation error: name is required"
// becomes "name is required". Date-range errors keep their sentinel text
// since it is the message.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if errors.Is(err, domain.ErrDateRange) {
		if i := strings.Index(msg, domain.ErrDateRange.Error()); i >= 0 {
			return msg[i:]
		}
		return msg
	}
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
