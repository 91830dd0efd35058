package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	eventrepo "event-hub/backend/internal/event/repository"
	"event-hub/backend/internal/server/middleware"
	"event-hub/backend/internal/ticket/domain"
	"event-hub/backend/internal/ticket/repository"
)

// TicketHandler serves ticket purchase and lookup endpoints. The purchaser
// of a new ticket is always the authenticated caller.
type TicketHandler struct {
	repo   repository.Repository
	events eventrepo.Repository
	log    *logrus.Logger
}

func NewTicketHandler(repo repository.Repository, events eventrepo.Repository, log *logrus.Logger) *TicketHandler {
	return &TicketHandler{repo: repo, events: events, log: log}
}

// RegisterRoutes mounts the ticket endpoints. reads must carry RequireAuth;
// deletes must additionally carry the ticket-management permission check.
func (h *TicketHandler) RegisterRoutes(reads, deletes *gin.RouterGroup) {
	reads.POST("/events/:id/tickets", h.purchase)
	reads.GET("/events/:id/tickets", h.listByEvent)
	reads.GET("/users/:id/tickets", h.listByUser)
	deletes.DELETE("/tickets/:id", h.delete)
}

type purchaseRequest struct {
	TicketType string  `json:"ticket_type" binding:"required,max=100"`
	Price      float64 `json:"price" binding:"gte=0"`
}

type ticketResponse struct {
	ID          string    `json:"ticket_id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	TicketType  string    `json:"ticket_type"`
	Price       float64   `json:"price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		UserID:      t.UserID,
		TicketType:  t.TicketType,
		Price:       t.Price,
		PurchasedAt: t.PurchasedAt,
	}
}

func (h *TicketHandler) purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	ident := middleware.MustIdentity(c)
	ctx := c.Request.Context()

	event, err := h.events.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "ticket.purchase").WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}

	ticket := &domain.Ticket{
		ID:          uuid.New().String(),
		EventID:     event.ID,
		UserID:      ident.UserID,
		TicketType:  req.TicketType,
		Price:       req.Price,
		PurchasedAt: time.Now().UTC(),
	}
	if err := ticket.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.repo.Create(ctx, ticket); err != nil {
		h.log.WithField("operation", "ticket.purchase").WithError(err).Error("ticket insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) listByEvent(c *gin.Context) {
	tickets, err := h.repo.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "ticket.list").WithError(err).Error("ticket query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	h.respondList(c, tickets)
}

func (h *TicketHandler) listByUser(c *gin.Context) {
	tickets, err := h.repo.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "ticket.list").WithError(err).Error("ticket query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	h.respondList(c, tickets)
}

func (h *TicketHandler) respondList(c *gin.Context, tickets []*domain.Ticket) {
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TicketHandler) delete(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.WithField("operation", "ticket.delete").WithError(err).Error("ticket delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error occurred"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket cancelled successfully"})
}
