package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event raised by an aggregate. Events are collected on
// the aggregate while a command executes and published only after the
// aggregate has been saved.
type Event interface {
	ID() uuid.UUID
	AggregateID() string
	AggregateType() string
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	id            uuid.UUID
	aggregateID   string
	aggregateType string
	eventType     string
	occurredAt    time.Time
}

// NewBaseEvent creates a new base event for the given aggregate.
func NewBaseEvent(aggregateID, aggregateType, eventType string) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		eventType:     eventType,
		occurredAt:    time.Now(),
	}
}

// ID returns the event ID.
func (e BaseEvent) ID() uuid.UUID { return e.id }

// AggregateID returns the id of the aggregate that raised the event.
func (e BaseEvent) AggregateID() string { return e.aggregateID }

// AggregateType returns the aggregate kind.
func (e BaseEvent) AggregateType() string { return e.aggregateType }

// EventType returns the event type name.
func (e BaseEvent) EventType() string { return e.eventType }

// OccurredAt returns when the event was raised.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// Publisher delivers events to downstream consumers, such as the media
// encoder queue. Implementations live in infrastructure.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Envelope is the wire shape shared by the NATS and Kafka publishers.
type Envelope struct {
	ID            string      `json:"id"`
	AggregateID   string      `json:"aggregate_id"`
	AggregateType string      `json:"aggregate_type"`
	EventType     string      `json:"event_type"`
	OccurredAt    time.Time   `json:"occurred_at"`
	Data          interface{} `json:"data"`
}

// NewEnvelope wraps an event for transport.
func NewEnvelope(event Event) Envelope {
	return Envelope{
		ID:            event.ID().String(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		EventType:     event.EventType(),
		OccurredAt:    event.OccurredAt(),
		Data:          event,
	}
}
