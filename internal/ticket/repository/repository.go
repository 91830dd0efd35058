package repository

import (
	"context"

	"event-hub/backend/internal/ticket/domain"
)

// Repository is the persistence surface for tickets.
type Repository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	Delete(ctx context.Context, id string) (bool, error)
}
