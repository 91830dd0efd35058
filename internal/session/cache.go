// Package session is the session cache: a fast email -> token mapping whose
// TTL matches the access token lifetime. It is the source of truth for "is
// this the most recently issued session for this user"; writing a new entry
// for an email replaces the old one, which is the single-active-session
// enforcement point.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the cache backend cannot be reached or
// times out. Callers must surface it as a server-side fault, never as
// "no session".
var ErrUnavailable = errors.New("session store unavailable")

// Cache maps a user's email to the last-issued token. Implementations must be
// safe for concurrent use across different emails.
type Cache interface {
	// Put stores token under email with the given TTL, replacing any prior
	// entry and resetting its countdown.
	Put(ctx context.Context, email, token string, ttl time.Duration) error
	// Get returns the cached token for email, or "" if no entry exists.
	// A reachability failure is reported as ErrUnavailable, not as absence.
	Get(ctx context.Context, email string) (string, error)
	// Delete removes the entry for email. Deleting an absent entry is not an error.
	Delete(ctx context.Context, email string) error
}
