package personas

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/personagen/pkg/export"
	"github.com/dmitrymomot/personagen/pkg/persona"
)

// envelope is the standard JSON response body.
type envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *errorDetail   `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (m *Module) respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.log.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondError maps domain errors onto HTTP statuses: contract violations
// (bad count, unknown state, unsupported format) are 422, malformed input is
// 400, unknown sessions are 404, everything else is 500.
func (m *Module) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, persona.ErrInvalidCount):
		status, code = http.StatusUnprocessableEntity, "invalid_count"
	case errors.Is(err, persona.ErrUnknownState):
		status, code = http.StatusUnprocessableEntity, "unknown_state"
	case errors.Is(err, export.ErrUnsupportedFormat):
		status, code = http.StatusUnprocessableEntity, "unsupported_format"
	case errors.Is(err, ErrInvalidRequest):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, ErrSessionNotFound):
		status, code = http.StatusNotFound, "session_not_found"
	case errors.Is(err, ErrNoBatch):
		status, code = http.StatusConflict, "no_batch"
	}

	if status == http.StatusInternalServerError {
		m.log.Error("request failed", slog.Any("error", err))
	}

	m.respond(w, status, envelope{Error: &errorDetail{Code: code, Message: err.Error()}})
}
