package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotResolved     = errors.New("session source not resolved")
)

// SessionNotFound wraps ErrSessionNotFound with the slug the caller asked
// for, so a stale reference can be reported precisely.
func SessionNotFound(slug string) error {
	return fmt.Errorf("%w: %s", ErrSessionNotFound, slug)
}
