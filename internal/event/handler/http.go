// Package handler serves event CRUD over HTTP. All routes run behind the
// auth gate; mutations additionally require the event-management permission.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"event-hub/backend/internal/event/domain"
	"event-hub/backend/internal/event/repository"
)

// EventHandler serves the /events endpoints.
type EventHandler struct {
	repo repository.Repository
	log  *logrus.Logger
}

// NewEventHandler returns an EventHandler over the given repository.
func NewEventHandler(repo repository.Repository, log *logrus.Logger) *EventHandler {
	return &EventHandler{repo: repo, log: log}
}

// RegisterRoutes mounts the event endpoints. reads must carry RequireAuth;
// writes must additionally carry the event-management permission check.
func (h *EventHandler) RegisterRoutes(reads, writes *gin.RouterGroup) {
	reads.GET("", h.list)
	reads.GET("/:id", h.get)
	writes.POST("", h.create)
	writes.PUT("/:id", h.update)
	writes.DELETE("/:id", h.delete)
}

type eventRequest struct {
	Name        string    `json:"event_name" binding:"required,max=255"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required,max=255"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Status      string    `json:"status"`
}

type eventResponse struct {
	ID          string    `json:"event_id"`
	Name        string    `json:"event_name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *EventHandler) create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := event.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.repo.Create(c.Request.Context(), event); err != nil {
		h.log.WithField("operation", "event.create").WithError(err).Error("event insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *EventHandler) list(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 10)

	events, err := h.repo.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.WithField("operation", "event.list").WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EventHandler) get(c *gin.Context) {
	event, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "event.get").WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *EventHandler) update(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	event, err := h.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "event.update").WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Location = req.Location
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Status = status
	event.UpdatedAt = time.Now().UTC()
	if err := event.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.repo.Update(ctx, event); err != nil {
		h.log.WithField("operation", "event.update").WithError(err).Error("event update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *EventHandler) delete(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "event.delete").WithError(err).Error("event delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
