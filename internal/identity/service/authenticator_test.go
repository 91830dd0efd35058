package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-hub/backend/internal/security"
	"event-hub/backend/internal/session"
	userdomain "event-hub/backend/internal/user/domain"
)

func newTestAuthenticator(t *testing.T, cache session.Cache) (*Authenticator, *security.TokenProvider) {
	t.Helper()
	tokens, err := security.NewTokenProvider([]byte("test-signing-key"), 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}
	return NewAuthenticator(tokens, cache), tokens
}

func TestAuthenticate_Success(t *testing.T) {
	cache := newMemCache()
	gate, tokens := newTestAuthenticator(t, cache)
	ctx := context.Background()

	token, _, err := tokens.Issue("u1", "a@x.com", userdomain.RoleOrganizer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := cache.Put(ctx, "a@x.com", token, 30*time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}

	ident, err := gate.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if ident.UserID != "u1" || ident.Email != "a@x.com" || ident.Role != userdomain.RoleOrganizer {
		t.Errorf("identity = %+v", ident)
	}
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	gate, _ := newTestAuthenticator(t, newMemCache())
	_, err := gate.Authenticate(context.Background(), "garbage")
	if !errors.Is(err, security.ErrTokenMalformed) {
		t.Errorf("got %v, want ErrTokenMalformed", err)
	}
}

func TestAuthenticate_WrongSignature(t *testing.T) {
	cache := newMemCache()
	gate, _ := newTestAuthenticator(t, cache)
	ctx := context.Background()

	other, err := security.NewTokenProvider([]byte("a-different-key"), 30*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	forged, _, err := other.Issue("u1", "a@x.com", userdomain.RoleAttendee)
	if err != nil {
		t.Fatal(err)
	}
	// Even with a matching cache entry the signature check comes first.
	_ = cache.Put(ctx, "a@x.com", forged, 30*time.Minute)

	if _, err := gate.Authenticate(ctx, forged); !errors.Is(err, security.ErrInvalidSignature) {
		t.Errorf("got %v, want ErrInvalidSignature", err)
	}
}

func TestAuthenticate_ExpiredTokenIgnoresCache(t *testing.T) {
	cache := newMemCache()
	gate, tokens := newTestAuthenticator(t, cache)
	ctx := context.Background()

	expired, _, err := tokens.IssueWithTTL("u1", "a@x.com", userdomain.RoleAttendee, -time.Minute)
	if err != nil {
		t.Fatalf("IssueWithTTL: %v", err)
	}
	// Cache still holds the token; embedded expiry alone must reject it.
	_ = cache.Put(ctx, "a@x.com", expired, 30*time.Minute)

	if _, err := gate.Authenticate(ctx, expired); !errors.Is(err, security.ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestAuthenticate_NoSessionEntry(t *testing.T) {
	gate, tokens := newTestAuthenticator(t, newMemCache())
	token, _, err := tokens.Issue("u1", "a@x.com", userdomain.RoleAttendee)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gate.Authenticate(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("got %v, want ErrInvalidSession", err)
	}
}

func TestAuthenticate_TokenMismatch(t *testing.T) {
	cache := newMemCache()
	gate, tokens := newTestAuthenticator(t, cache)
	ctx := context.Background()

	token, _, err := tokens.Issue("u1", "a@x.com", userdomain.RoleAttendee)
	if err != nil {
		t.Fatal(err)
	}
	_ = cache.Put(ctx, "a@x.com", token+"-not-this-one", 30*time.Minute)

	if _, err := gate.Authenticate(ctx, token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("got %v, want ErrInvalidSession", err)
	}
}

func TestAuthenticate_CacheUnavailableIsNotUnauthenticated(t *testing.T) {
	gate, tokens := newTestAuthenticator(t, downCache{})
	token, _, err := tokens.Issue("u1", "a@x.com", userdomain.RoleAttendee)
	if err != nil {
		t.Fatal(err)
	}
	_, err = gate.Authenticate(context.Background(), token)
	if !errors.Is(err, session.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if errors.Is(err, ErrInvalidSession) {
		t.Error("cache outage must not be reported as an invalid session")
	}
}
