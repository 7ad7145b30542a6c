package diff

import "errors"

// Sentinel errors returned by the diff algorithms.
var (
	// ErrInvalidQuorum is returned when a quorum fraction lies outside (0, 1].
	ErrInvalidQuorum = errors.New("quorum must be a fraction in (0, 1]")
	// ErrDepthExceeded is returned when an input tree nests deeper than the
	// configured maximum, instead of risking stack exhaustion.
	ErrDepthExceeded = errors.New("value tree exceeds maximum nesting depth")
)
