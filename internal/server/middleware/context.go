package middleware

import (
	"context"

	"event-hub/backend/internal/identity/service"
)

type identityKeyType struct{}

var identityKey = identityKeyType{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, ident service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext extracts the authenticated identity from ctx.
// ok is false when the request did not pass the auth gate.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(service.Identity)
	return ident, ok
}
