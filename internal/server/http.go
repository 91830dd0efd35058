// Package server assembles the HTTP router: middleware, route groups, and
// the permission checks that guard mutating endpoints.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	eventhandler "event-hub/backend/internal/event/handler"
	identityhandler "event-hub/backend/internal/identity/handler"
	"event-hub/backend/internal/identity/service"
	"event-hub/backend/internal/platform/rbac"
	reviewhandler "event-hub/backend/internal/review/handler"
	"event-hub/backend/internal/server/middleware"
	tickethandler "event-hub/backend/internal/ticket/handler"
)

// Handlers groups the route handlers mounted on the router.
type Handlers struct {
	Auth    *identityhandler.AuthHandler
	Events  *eventhandler.EventHandler
	Tickets *tickethandler.TicketHandler
	Reviews *reviewhandler.ReviewHandler
}

// NewRouter builds the gin engine with logging, tracing, and the auth gate
// wired in. Event mutations and ticket deletion sit behind permission checks.
func NewRouter(h Handlers, gate *service.Authenticator, authz *rbac.Authorizer, tracer trace.Tracer, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Trace(tracer))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/auth")
	protected := router.Group("/auth")
	protected.Use(middleware.RequireAuth(gate, log))
	h.Auth.RegisterRoutes(public, protected)

	authed := router.Group("/")
	authed.Use(middleware.RequireAuth(gate, log))

	eventReads := authed.Group("/events")
	eventWrites := authed.Group("/events")
	eventWrites.Use(middleware.RequirePermission(authz, "manage", "event", log))
	h.Events.RegisterRoutes(eventReads, eventWrites)

	ticketDeletes := authed.Group("/")
	ticketDeletes.Use(middleware.RequirePermission(authz, "delete", "ticket", log))
	h.Tickets.RegisterRoutes(authed, ticketDeletes)

	h.Reviews.RegisterRoutes(authed)

	return router
}
