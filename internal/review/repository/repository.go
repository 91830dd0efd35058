package repository

import (
	"context"

	"event-hub/backend/internal/review/domain"
)

// Repository is the persistence surface for reviews.
type Repository interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Review, error)
}
