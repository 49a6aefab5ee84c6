package personas

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// Module bundles the session store with the HTTP handlers.
type Module struct {
	store *Store
	log   *slog.Logger
}

// New returns a Module over the given store. A nil logger discards logs.
func New(store *Store, log *slog.Logger) *Module {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Module{store: store, log: log}
}

// Router returns the mountable API router.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/states", m.listStates)
	r.Post("/sessions", m.createSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Delete("/", m.deleteSession)
		r.Post("/personas", m.generate)
		r.Get("/personas", m.listBatch)
		r.Get("/report", m.report)
		r.Post("/reset", m.reset)
		r.Get("/export", m.exportBatch)
	})

	return r
}
