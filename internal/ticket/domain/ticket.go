package domain

import (
	"errors"
	"time"
)

// Ticket is a purchase of entry to an event by a user.
type Ticket struct {
	ID          string
	EventID     string
	UserID      string
	TicketType  string
	Price       float64
	PurchasedAt time.Time
}

// Validate checks structural rules before persistence.
func (t *Ticket) Validate() error {
	if t.ID == "" {
		return errors.New("ticket id is required")
	}
	if t.EventID == "" {
		return errors.New("event id is required")
	}
	if t.UserID == "" {
		return errors.New("user id is required")
	}
	if t.TicketType == "" {
		return errors.New("ticket type is required")
	}
	if len(t.TicketType) > 100 {
		return errors.New("ticket type must be at most 100 characters")
	}
	if t.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}
