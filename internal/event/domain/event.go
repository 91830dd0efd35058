package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Event is a scheduled happening that tickets and reviews attach to.
type Event struct {
	ID          string
	Name        string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Status is the closed set of event states, defined once and imported
// everywhere. Canonical form is lowercase.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// ErrInvalidStatus is returned when a status string is outside the closed set.
var ErrInvalidStatus = errors.New("invalid event status")

// ParseStatus validates s against the closed status set, case-insensitively,
// and returns the canonical lowercase form. Empty input defaults to upcoming.
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusUpcoming, nil
	}
	switch Status(s) {
	case StatusUpcoming:
		return StatusUpcoming, nil
	case StatusOngoing:
		return StatusOngoing, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Validate validates the event for persistence.
func (e *Event) Validate() error {
	if e.Name == "" {
		return errors.New("event name is required")
	}
	if e.Location == "" {
		return errors.New("location is required")
	}
	if !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		return errors.New("end time precedes start time")
	}
	if _, err := ParseStatus(string(e.Status)); err != nil {
		return err
	}
	return nil
}
