package service

import (
	"context"
	"errors"

	"event-hub/backend/internal/security"
	"event-hub/backend/internal/session"
	userdomain "event-hub/backend/internal/user/domain"
)

// ErrInvalidSession is returned when a structurally valid token is not the
// one recorded in the session cache for its email, or no entry exists. This
// is how logout and re-login invalidate tokens before their embedded expiry.
var ErrInvalidSession = errors.New("invalid session")

// Identity is the resolved caller identity made available to handlers.
type Identity struct {
	UserID string
	Email  string
	Role   userdomain.Role
}

// Authenticator is the request-time gate: it verifies a bearer token and
// cross-checks it against the session cache. It performs no writes.
type Authenticator struct {
	tokens *security.TokenProvider
	cache  session.Cache
}

// NewAuthenticator returns an Authenticator using the given token provider
// and session cache.
func NewAuthenticator(tokens *security.TokenProvider, cache session.Cache) *Authenticator {
	return &Authenticator{tokens: tokens, cache: cache}
}

// Authenticate verifies the token's signature and expiry, then requires the
// session cache entry for the claimed email to equal the presented token
// exactly. Cache unreachability surfaces as session.ErrUnavailable, which is
// an infrastructure fault, not an authentication failure.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return Identity{}, err
	}
	cached, err := a.cache.Get(ctx, claims.Subject)
	if err != nil {
		return Identity{}, err
	}
	if cached == "" || cached != token {
		return Identity{}, ErrInvalidSession
	}
	role, err := userdomain.ParseRole(claims.Role)
	if err != nil {
		return Identity{}, security.ErrTokenMalformed
	}
	return Identity{
		UserID: claims.UserID,
		Email:  claims.Subject,
		Role:   role,
	}, nil
}
