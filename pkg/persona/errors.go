package persona

import "errors"

// Package-specific errors. Field-level retry exhaustion is never surfaced as
// an error; it is absorbed by the documented fallbacks and visible only
// through the report counters.
var (
	// ErrInvalidCount is returned when the requested batch size is not
	// positive or exceeds the configured maximum.
	ErrInvalidCount = errors.New("persona count must be positive and within the configured maximum")

	// ErrUnknownState is returned when the requested state is not present in
	// the reference catalog.
	ErrUnknownState = errors.New("state is not present in the reference catalog")

	// ErrInvalidCatalog is returned when catalog data fails to parse or is
	// structurally incomplete.
	ErrInvalidCatalog = errors.New("invalid reference catalog")
)
