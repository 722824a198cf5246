package contracts

import (
	"context"
	"time"
)

// Event is the envelope written to the domain events queue.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	RequestID  string      `json:"requestId,omitempty"`
	Payload    interface{} `json:"payload"`
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
