package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	eventrepo "event-hub/backend/internal/event/repository"
	"event-hub/backend/internal/review/domain"
	"event-hub/backend/internal/review/repository"
	"event-hub/backend/internal/server/middleware"
)

// ReviewHandler serves review submission and listing for an event. The
// author of a new review is always the authenticated caller.
type ReviewHandler struct {
	repo   repository.Repository
	events eventrepo.Repository
	log    *logrus.Logger
}

func NewReviewHandler(repo repository.Repository, events eventrepo.Repository, log *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{repo: repo, events: events, log: log}
}

// RegisterRoutes mounts the review endpoints under an authenticated group.
func (h *ReviewHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/events/:id/reviews", h.create)
	g.GET("/events/:id/reviews", h.listByEvent)
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

type reviewResponse struct {
	ID        string    `json:"review_id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (h *ReviewHandler) create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	ident := middleware.MustIdentity(c)
	ctx := c.Request.Context()

	event, err := h.events.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "review.create").WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		UserID:    ident.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := review.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.repo.Create(ctx, review); err != nil {
		h.log.WithField("operation", "review.create").WithError(err).Error("review insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

func (h *ReviewHandler) listByEvent(c *gin.Context) {
	reviews, err := h.repo.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "review.list").WithError(err).Error("review query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, out)
}
