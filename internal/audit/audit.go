// Package audit records identity lifecycle events (registration, login,
// logout) to an external broker, fire-and-forget. The trail is best-effort:
// a broker outage never fails the request that triggered the event.
package audit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Event types for the identity lifecycle.
const (
	TypeUserRegistered = "user.registered"
	TypeUserLogin      = "user.login"
	TypeUserLogout     = "user.logout"
)

// Event is one audit record. It carries identity pointers only; never
// credentials or tokens.
type Event struct {
	Type   string    `json:"type"`
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// Emitter delivers audit events to a sink.
type Emitter interface {
	Emit(ctx context.Context, event *Event) error
}

// emitTimeout is the max time allowed for a single async emit.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration is how long to wait after the HTTP server drains
// before closing the producer, so in-flight async emits can complete.
// Must be >= emitTimeout.
const ShutdownDrainDuration = emitTimeout

// EmitAsync runs Emit in a goroutine with a short timeout so the caller is
// not blocked. emitter and event may be nil; EmitAsync then returns without
// starting a goroutine. The goroutine uses context.Background() with
// emitTimeout so request cancellation does not abort an in-flight emit.
func EmitAsync(emitter Emitter, log *logrus.Logger, event *Event) {
	if emitter == nil || event == nil {
		return
	}
	go func() {
		emitCtx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := emitter.Emit(emitCtx, event); err != nil {
			log.WithField("event_type", event.Type).WithError(err).Warn("audit: async emit failed")
		}
	}()
}

// NewEvent builds an audit event stamped with the current UTC time.
func NewEvent(eventType, userID, email string) *Event {
	return &Event{
		Type:   eventType,
		UserID: userID,
		Email:  email,
		At:     time.Now().UTC(),
	}
}
