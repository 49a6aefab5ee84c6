package personas

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("generation session not found")
	// ErrNoBatch is returned when export or listing is requested before any
	// batch was generated in the session.
	ErrNoBatch = errors.New("no personas generated in this session yet")
	// ErrInvalidRequest wraps malformed request bodies and parameters.
	ErrInvalidRequest = errors.New("invalid request")
)
