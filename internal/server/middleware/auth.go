// Package middleware holds the HTTP request gates: bearer-token
// authentication, role authorization, request logging, and tracing.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"event-hub/backend/internal/identity/service"
	"event-hub/backend/internal/security"
	"event-hub/backend/internal/session"
)

const bearerPrefix = "bearer "

// RequireAuth returns a middleware that validates the Authorization bearer
// token via the gate and attaches the resolved identity to the request
// context. Every 401 carries a bearer challenge; a session-cache outage is a
// 500, never a 401.
func RequireAuth(gate *service.Authenticator, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		ident, err := gate.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnavailable) {
				log.WithFields(logrus.Fields{
					"operation": "authenticate",
					"path":      c.FullPath(),
				}).WithError(err).Error("session cache unreachable")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Session management error"})
				return
			}
			unauthorized(c, authFailureDetail(err))
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}

// MustIdentity returns the identity set by RequireAuth. It must only be
// called from handlers registered behind that middleware.
func MustIdentity(c *gin.Context) service.Identity {
	ident, ok := IdentityFromContext(c.Request.Context())
	if !ok {
		// Route wiring error: handler mounted outside the auth group.
		panic("middleware: identity missing; handler not behind RequireAuth")
	}
	return ident
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

func authFailureDetail(err error) string {
	switch {
	case errors.Is(err, security.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, service.ErrInvalidSession):
		return "Invalid session"
	default:
		return "Could not validate credentials"
	}
}

// extractBearer returns the token from an Authorization header value, or ""
// if the value is missing or not a bearer credential.
func extractBearer(header string) string {
	v := strings.TrimSpace(header)
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
