// Package handler exposes the session lifecycle over HTTP: register, login,
// logout, and me. It maps the auth service's sentinel errors to status codes
// and keeps infrastructure detail out of response bodies.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"event-hub/backend/internal/audit"
	"event-hub/backend/internal/identity/service"
	"event-hub/backend/internal/security"
	"event-hub/backend/internal/server/middleware"
	"event-hub/backend/internal/session"
	userdomain "event-hub/backend/internal/user/domain"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	svc     *service.AuthService
	emitter audit.Emitter
	log     *logrus.Logger
}

// NewAuthHandler returns an AuthHandler. emitter may be nil to disable the
// audit trail.
func NewAuthHandler(svc *service.AuthService, emitter audit.Emitter, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, emitter: emitter, log: log}
}

// RegisterRoutes mounts the public and protected auth endpoints. protected
// must already carry the RequireAuth middleware.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/register", h.register)
	public.POST("/login", h.login)
	protected.POST("/logout", h.logout)
	protected.GET("/me", h.me)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *userdomain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	switch {
	case err == nil:
	case errors.Is(err, userdomain.ErrInvalidRole), errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	default:
		h.log.WithField("operation", "register").WithError(err).Error("user registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to register user"})
		return
	}

	audit.EmitAsync(h.emitter, h.log, audit.NewEvent(audit.TypeUserRegistered, user.ID, user.Email))
	c.JSON(http.StatusOK, toUserResponse(user))
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// login accepts the OAuth2 password form: the email travels in the
// "username" field.
func (h *AuthHandler) login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		h.unauthorized(c, "Invalid credentials")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), email, password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		h.unauthorized(c, "Invalid credentials")
		return
	case errors.Is(err, session.ErrUnavailable):
		h.log.WithField("operation", "login").WithError(err).Error("session cache unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Session management error"})
		return
	case errors.Is(err, security.ErrIssuance):
		h.log.WithField("operation", "login").WithError(err).Error("token issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not create access token"})
		return
	default:
		h.log.WithField("operation", "login").WithError(err).Error("credential lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}

	audit.EmitAsync(h.emitter, h.log, audit.NewEvent(audit.TypeUserLogin, res.UserID, res.Email))
	c.JSON(http.StatusOK, tokenResponse{AccessToken: res.AccessToken, TokenType: "bearer"})
}

func (h *AuthHandler) logout(c *gin.Context) {
	ident := middleware.MustIdentity(c)
	if err := h.svc.Logout(c.Request.Context(), ident); err != nil {
		h.log.WithField("operation", "logout").WithError(err).Error("session delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Session management error"})
		return
	}
	audit.EmitAsync(h.emitter, h.log, audit.NewEvent(audit.TypeUserLogout, ident.UserID, ident.Email))
	c.JSON(http.StatusOK, gin.H{"detail": "Logout successful"})
}

func (h *AuthHandler) me(c *gin.Context) {
	ident := middleware.MustIdentity(c)
	user, err := h.svc.UserByIdentity(c.Request.Context(), ident)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	default:
		h.log.WithField("operation", "me").WithError(err).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
