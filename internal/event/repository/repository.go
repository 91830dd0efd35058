package repository

import (
	"context"

	"event-hub/backend/internal/event/domain"
)

// Repository defines persistence for events.
type Repository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) (bool, error)
}
