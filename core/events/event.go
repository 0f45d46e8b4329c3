package events

import (
	"time"

	"github.com/google/uuid"
)

// Type names a kind of event.
type Type string

// Event is a fact that already happened and was committed.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// New creates an event with a fresh id.
func New(t Type, payload any) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
