package domain

import (
	"errors"
	"time"
)

// Review is attendee feedback on an event.
type Review struct {
	ID        string    `bson:"_id"`
	EventID   string    `bson:"event_id"`
	UserID    string    `bson:"user_id"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"created_at"`
}

// Validate checks structural rules before persistence.
func (r *Review) Validate() error {
	if r.ID == "" {
		return errors.New("review id is required")
	}
	if r.EventID == "" {
		return errors.New("event id is required")
	}
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if len(r.Comment) > 500 {
		return errors.New("comment must be at most 500 characters")
	}
	return nil
}
