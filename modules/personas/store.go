package personas

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/personagen/pkg/persona"
)

// DefaultSessionTTL expires sessions that have been idle for this long.
const DefaultSessionTTL = 30 * time.Minute

// Session is one generation lineage plus the batch it last produced.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	gen *persona.Generator

	mu         sync.Mutex
	batch      []persona.Persona
	lastActive time.Time
}

// Generator returns the session's generator.
func (s *Session) Generator() *persona.Generator { return s.gen }

// SetBatch retains the latest generated batch for the export endpoints.
func (s *Session) SetBatch(batch []persona.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = batch
}

// Batch returns the last generated batch, or ErrNoBatch.
func (s *Session) Batch() ([]persona.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.batch) == 0 {
		return nil, ErrNoBatch
	}
	out := make([]persona.Persona, len(s.batch))
	copy(out, s.batch)
	return out, nil
}

// Store holds per-session generators in memory. Idle sessions are swept
// lazily on access once their TTL elapses; nothing survives a restart.
type Store struct {
	catalog *persona.Catalog
	genOpts []persona.Option
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithGeneratorOptions forwards options to every session's generator.
func WithGeneratorOptions(opts ...persona.Option) StoreOption {
	return func(s *Store) { s.genOpts = append(s.genOpts, opts...) }
}

// WithClock overrides the store's clock. Nil values are ignored.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns a session store over the given catalog. A nil catalog
// selects the embedded default; a non-positive TTL selects DefaultSessionTTL.
func NewStore(catalog *persona.Catalog, ttl time.Duration, opts ...StoreOption) *Store {
	if catalog == nil {
		catalog = persona.DefaultCatalog()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Store{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the shared reference catalog.
func (s *Store) Catalog() *persona.Catalog { return s.catalog }

// Create opens a new generation session.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	now := s.now()
	sess := &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		gen:        persona.New(s.catalog, s.genOpts...),
		lastActive: now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.mu.Lock()
	sess.lastActive = s.now()
	sess.mu.Unlock()
	return sess, nil
}

// Delete drops a session; unknown IDs are a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

func (s *Store) sweepLocked() {
	deadline := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(deadline)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}
}
