// Package service implements the session lifecycle: registration, login,
// logout, and per-request identity resolution. It is the only writer to the
// user store and the session cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"event-hub/backend/internal/security"
	"event-hub/backend/internal/session"
	userdomain "event-hub/backend/internal/user/domain"
)

// Sentinel errors for the auth service; the HTTP handler maps them to status codes.
var (
	// ErrValidation wraps field-shape failures (bad email, short password, empty name).
	ErrValidation = errors.New("validation failed")
	// ErrEmailAlreadyRegistered is returned when registering an email that exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email and for wrong password
	// alike, so login cannot be used as a user-existence oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a valid token resolves to a user row
	// that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

const minPasswordLength = 8

// AuthResult holds the outcome of a successful login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	UserID      string
	Email       string
}

// UserRepo is the minimal user repository needed by the auth service.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	Create(ctx context.Context, u *userdomain.User) error
}

// AuthService orchestrates the credential store, password hasher, token
// issuer, and session cache. All collaborators are injected; the service
// holds no mutable state of its own.
type AuthService struct {
	users  UserRepo
	cache  session.Cache
	hasher *security.Hasher
	tokens *security.TokenProvider
	gate   *Authenticator
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(users UserRepo, cache session.Cache, hasher *security.Hasher, tokens *security.TokenProvider) *AuthService {
	return &AuthService{
		users:  users,
		cache:  cache,
		hasher: hasher,
		tokens: tokens,
		gate:   NewAuthenticator(tokens, cache),
	}
}

// Authenticator returns the request-time gate sharing this service's token
// provider and session cache.
func (s *AuthService) Authenticator() *Authenticator {
	return s.gate
}

// Register creates a user with the given name, email, password, and role.
// The role must belong to the closed role set. Returns the created user;
// callers must not expose its PasswordHash.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*userdomain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	parsedRole, err := userdomain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &userdomain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         parsedRole,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates with email/password, issues a token, and records it in
// the session cache keyed by email with a TTL equal to the token lifetime.
// Issuing replaces any prior session for the user: the old cache entry is
// overwritten, so at most one token per user verifies afterwards.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, []byte(password)) {
		return nil, ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, user.Email, token, s.tokens.AccessTTL()); err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Email:       user.Email,
	}, nil
}

// Logout removes the session cache entry for the identity's email, making the
// outstanding token invalid even before its embedded expiry. Idempotent:
// logging out an absent session is not an error.
func (s *AuthService) Logout(ctx context.Context, ident Identity) error {
	return s.cache.Delete(ctx, ident.Email)
}

// CurrentUser authenticates the token and re-reads the user row for the
// resolved email. Returns ErrUserNotFound if the row vanished after issuance.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*userdomain.User, error) {
	ident, err := s.gate.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.UserByIdentity(ctx, ident)
}

// UserByIdentity re-reads the user row for an already-authenticated identity.
// Returns ErrUserNotFound if the row was deleted after token issuance.
func (s *AuthService) UserByIdentity(ctx context.Context, ident Identity) (*userdomain.User, error) {
	user, err := s.users.GetByEmail(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	const simpleEmail = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	ok, _ := regexp.MatchString(simpleEmail, email)
	if !ok {
		return errors.New("invalid email format")
	}
	return nil
}
