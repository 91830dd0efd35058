package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	userdomain "event-hub/backend/internal/user/domain"
)

// Token verification and issuance errors. The auth middleware maps the
// verification errors to 401 and ErrIssuance to 500.
var (
	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when the token cannot be parsed or its claims are incomplete.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrInvalidSignature is returned when the signature does not verify against the signing key.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrIssuance is returned when signing a new token fails.
	ErrIssuance = errors.New("token issuance failed")
)

// AccessClaims holds JWT claims for the access token. Subject is the user's
// email; UserID and Role are embedded so the request gate can resolve an
// identity without a database read.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// TokenProvider issues and verifies HS256 access tokens with a process-wide
// symmetric key. The key is loaded once at startup; rotating it invalidates
// every outstanding token (no key-rotation grace).
type TokenProvider struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenProvider returns a TokenProvider that signs with the given symmetric
// key. accessTTL is the default token lifetime.
func NewTokenProvider(secret []byte, accessTTL time.Duration) (*TokenProvider, error) {
	if len(secret) == 0 {
		return nil, errors.New("security: signing key must not be empty")
	}
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	return &TokenProvider{
		secret:    secret,
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

// AccessTTL returns the configured token lifetime. The session cache TTL must
// be provisioned with the same duration so the two expiry views cannot diverge.
func (p *TokenProvider) AccessTTL() time.Duration {
	return p.accessTTL
}

// Issue signs an access token for the given identity with the provider's TTL.
// Returns the token string and its expiry time.
func (p *TokenProvider) Issue(userID, email string, role userdomain.Role) (token string, expiresAt time.Time, err error) {
	return p.IssueWithTTL(userID, email, role, p.accessTTL)
}

// IssueWithTTL signs an access token with an explicit lifetime.
func (p *TokenProvider) IssueWithTTL(userID, email string, role userdomain.Role, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	now := p.now().UTC()
	expiresAt = now.Add(ttl)
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps tokens minted within the same second distinct, so a
			// re-login always replaces the cached token with a different value.
			ID:        uuid.New().String(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Role:   string(role),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrIssuance, err)
	}
	return token, expiresAt, nil
}

// Verify parses and validates an access token (signature, expiry, claim shape).
// A token whose exp instant is now or earlier is expired. Returns the decoded
// claims, or ErrTokenExpired, ErrInvalidSignature, or ErrTokenMalformed.
func (p *TokenProvider) Verify(tokenString string) (*AccessClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.Subject == "" || claims.UserID == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
