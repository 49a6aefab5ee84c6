package personas

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/personagen/pkg/export"
)

type sessionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Module) createSession(w http.ResponseWriter, r *http.Request) {
	sess := m.store.Create()
	m.log.Info("session created", slog.String("session_id", sess.ID.String()))
	m.respond(w, http.StatusCreated, envelope{
		Data: sessionResponse{ID: sess.ID, CreatedAt: sess.CreatedAt},
	})
}

func (m *Module) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := m.sessionID(r)
	if err != nil {
		m.respondError(w, err)
		return
	}
	m.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (m *Module) listStates(w http.ResponseWriter, r *http.Request) {
	m.respond(w, http.StatusOK, envelope{
		Data: m.store.Catalog().States(),
		Meta: map[string]any{"mixed": "Mixed"},
	})
}

type generateRequest struct {
	Count int    `json:"count"`
	State string `json:"state"`
}

func (m *Module) generate(w http.ResponseWriter, r *http.Request) {
	sess, err := m.session(r)
	if err != nil {
		m.respondError(w, err)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		m.respondError(w, fmt.Errorf("%w: %s", ErrInvalidRequest, err))
		return
	}

	batch, err := sess.Generator().Generate(req.Count, req.State)
	if err != nil {
		m.respondError(w, err)
		return
	}
	sess.SetBatch(batch)

	m.log.Info("personas generated",
		slog.String("session_id", sess.ID.String()),
		slog.Int("count", len(batch)),
		slog.String("state", req.State),
	)
	m.respond(w, http.StatusOK, envelope{
		Data: batch,
		Meta: map[string]any{
			"count":  len(batch),
			"report": sess.Generator().Report(),
		},
	})
}

func (m *Module) listBatch(w http.ResponseWriter, r *http.Request) {
	sess, err := m.session(r)
	if err != nil {
		m.respondError(w, err)
		return
	}
	batch, err := sess.Batch()
	if err != nil {
		m.respondError(w, err)
		return
	}
	m.respond(w, http.StatusOK, envelope{
		Data: batch,
		Meta: map[string]any{"count": len(batch)},
	})
}

func (m *Module) report(w http.ResponseWriter, r *http.Request) {
	sess, err := m.session(r)
	if err != nil {
		m.respondError(w, err)
		return
	}
	m.respond(w, http.StatusOK, envelope{Data: sess.Generator().Report()})
}

func (m *Module) reset(w http.ResponseWriter, r *http.Request) {
	sess, err := m.session(r)
	if err != nil {
		m.respondError(w, err)
		return
	}
	sess.Generator().Reset()
	sess.SetBatch(nil)
	m.log.Info("session reset", slog.String("session_id", sess.ID.String()))
	m.respond(w, http.StatusOK, envelope{Data: sess.Generator().Report()})
}

func (m *Module) exportBatch(w http.ResponseWriter, r *http.Request) {
	sess, err := m.session(r)
	if err != nil {
		m.respondError(w, err)
		return
	}

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(export.FormatCSV)
	}
	format, err := export.ParseFormat(formatParam)
	if err != nil {
		m.respondError(w, err)
		return
	}

	batch, err := sess.Batch()
	if err != nil {
		m.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(format, time.Now())))
	if err := export.Write(w, format, batch, sess.Generator().Report()); err != nil {
		// Headers are out already; log instead of re-responding.
		m.log.Error("export failed", slog.Any("error", err))
	}
}

func (m *Module) sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return uuid.Nil, errors.Join(ErrSessionNotFound, err)
	}
	return id, nil
}

func (m *Module) session(r *http.Request) (*Session, error) {
	id, err := m.sessionID(r)
	if err != nil {
		return nil, err
	}
	return m.store.Get(id)
}
