package persona

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultMaxCount bounds a single batch request. The generator holds every
// batch in memory, so the cap mirrors the original tool's UI limit.
const DefaultMaxCount = 5000

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic for a given catalog and call
// sequence. Intended for tests and reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rnd = rand.New(rand.NewSource(seed)) }
}

// WithNow overrides the clock used for timestamps and the email fallback.
// Nil values are ignored.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMaxCount overrides the per-batch size limit. Non-positive values are
// ignored.
func WithMaxCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxCount = n
		}
	}
}

// Generator produces personas from an immutable catalog while tracking every
// issued name, email, phone, address and composite fingerprint. Tracking
// state lives for the generator's lifetime and is discarded by Reset.
type Generator struct {
	catalog  *Catalog
	maxCount int
	now      func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand

	fullNames    map[string]struct{}
	nameHashes   map[string]struct{}
	emails       map[string]struct{}
	phones       map[string]struct{}
	addresses    map[string]struct{}
	fingerprints map[string]struct{}

	total         int
	collisions    int
	regenerations int
}

// New returns a Generator over the given catalog. A nil catalog selects
// DefaultCatalog.
func New(catalog *Catalog, opts ...Option) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	g := &Generator{
		catalog:  catalog,
		maxCount: DefaultMaxCount,
		now:      time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.resetLocked()
	return g
}

// Catalog returns the reference catalog this generator draws from.
func (g *Generator) Catalog() *Catalog { return g.catalog }

// Generate produces count personas. An empty state or "Mixed" picks a state
// uniformly per persona; any other value must resolve against the catalog.
// Contract violations (ErrInvalidCount, ErrUnknownState) are rejected before
// any tracker mutation, so a failed call leaves the lineage untouched.
func (g *Generator) Generate(count int, state string) ([]Persona, error) {
	if count < 1 || count > g.maxCount {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrInvalidCount, count, g.maxCount)
	}

	mixed := state == "" || strings.EqualFold(state, "Mixed")
	var target string
	if !mixed {
		resolved, err := g.catalog.Resolve(state)
		if err != nil {
			return nil, err
		}
		target = resolved
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Persona, 0, count)
	for i := 0; i < count; i++ {
		st := target
		if mixed {
			st = pick(g.rnd, g.catalog.states)
		}
		out = append(out, g.generateOne(st))
	}
	return out, nil
}

// generateOne assembles a single persona for an already-resolved state.
// Caller holds g.mu.
func (g *Generator) generateOne(state string) Persona {
	first, last := g.uniqueName()
	// Email patterns key off the base first-name token, never the synthetic
	// middle initial.
	base := strings.Fields(first)[0]
	email := g.uniqueEmail(base, last)
	phone := g.uniquePhone(state)
	place := g.pickPlace(state)
	full := g.fullAddress(place, state)

	p := Persona{
		ID:            fmt.Sprintf("P%06d", g.total+1),
		FirstName:     first,
		LastName:      last,
		Email:         email,
		Phone:         phone,
		LocationName:  place.Name,
		StreetAddress: place.Street,
		City:          place.City,
		State:         g.catalog.codes[state],
		ZipCode:       place.Zip,
		FullAddress:   full,
		Type:          TypePublicPlace,
		GeneratedAt:   g.now(),
	}

	fp := contentHash(first, last, p.Email, phone, full)
	if _, seen := g.fingerprints[fp]; seen {
		// Near-impossible given per-field uniqueness. One corrective email
		// regeneration; a repeat collision is accepted as-is.
		g.regenerations++
		p.Email = g.uniqueEmail(base+strconv.Itoa(1+g.rnd.Intn(99)), last)
		fp = contentHash(first, last, p.Email, phone, full)
	}
	g.fingerprints[fp] = struct{}{}
	g.total++

	return p
}

func (g *Generator) fullAddress(place Place, state string) string {
	return fmt.Sprintf("%s, %s, %s %s", place.Street, place.City, g.catalog.codes[state], place.Zip)
}

// Reset discards all tracked uniqueness state and counters, starting a fresh
// generation lineage. Previously issued values become reusable and IDs
// restart at P000001.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Generator) resetLocked() {
	g.fullNames = make(map[string]struct{})
	g.nameHashes = make(map[string]struct{})
	g.emails = make(map[string]struct{})
	g.phones = make(map[string]struct{})
	g.addresses = make(map[string]struct{})
	g.fingerprints = make(map[string]struct{})
	g.total = 0
	g.collisions = 0
	g.regenerations = 0
}

// retry runs gen up to budget times and accepts the first candidate ok
// approves. Rejected attempts count as collisions. On exhaustion the last
// candidate is returned with accepted=false so callers can derive their
// field-specific fallback from it.
func retry[T any](g *Generator, budget int, gen func(attempt int) T, ok func(candidate T, attempt int) bool) (v T, accepted bool) {
	for attempt := 0; attempt < budget; attempt++ {
		v = gen(attempt)
		if ok(v, attempt) {
			return v, true
		}
		g.collisions++
	}
	return v, false
}

// pick returns a uniformly chosen element of list.
func pick[T any](rnd *rand.Rand, list []T) T {
	return list[rnd.Intn(len(list))]
}

// contentHash is the stable hash behind the secondary name check and the
// composite persona fingerprint: SHA-256 over the pipe-joined parts, first
// 16 bytes hex encoded.
func contentHash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:16])
}
