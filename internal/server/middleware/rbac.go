package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"event-hub/backend/internal/platform/rbac"
)

// RequirePermission returns a middleware that checks the authenticated role
// against the RBAC policy for the given action/resource pair. Must be mounted
// behind RequireAuth.
func RequirePermission(authz *rbac.Authorizer, action, resource string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := MustIdentity(c)
		allowed, err := authz.Allow(c.Request.Context(), ident.Role, action, resource)
		if err != nil {
			log.WithFields(logrus.Fields{
				"operation": "authorize",
				"action":    action,
				"resource":  resource,
			}).WithError(err).Error("policy evaluation failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Authorization error"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
