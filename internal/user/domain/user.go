package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// User is the core identity record. Immutable after creation except
// PasswordHash; users are never hard-deleted by the application.
type User struct {
	ID           string
	Email        string // stored lowercase; compared case-insensitively
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role is the closed set of user roles. Defined once here; every other
// package imports this enumeration rather than redeclaring role strings.
type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ErrInvalidRole is returned when a role string is outside the closed set.
var ErrInvalidRole = errors.New("invalid role")

// Roles returns all valid roles in declaration order.
func Roles() []Role {
	return []Role{RoleAttendee, RoleOrganizer, RoleAdmin}
}

// ParseRole validates s against the closed role set. Matching is
// case-insensitive; the canonical lowercase form is returned.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAttendee:
		return RoleAttendee, nil
	case RoleOrganizer:
		return RoleOrganizer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Name == "" {
		return errors.New("name is required")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}
