package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	domainevents "github.com/streamhaven/catalog/internal/domain/events"
)

// Publisher implements events.Publisher on NATS JetStream. The media
// encoder consumes the video.media.created subject to pick up pending
// work.
type Publisher struct {
	client *Client
	logger *zap.Logger
}

// NewPublisher creates a NATS event publisher.
func NewPublisher(client *Client, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger.Named("publisher"),
	}
}

// Publish sends a domain event to the catalog stream. The event id is
// used as the deduplication id, so retried publishes of the same event
// are delivered once.
func (p *Publisher) Publish(ctx context.Context, event domainevents.Event) error {
	subject := p.subjectFor(event)

	data, err := json.Marshal(domainevents.NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.client.JetStream().Publish(pubCtx, subject, data,
		jetstream.WithMsgID(event.ID().String()))
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.EventType()),
			zap.String("subject", subject),
		)
		return fmt.Errorf("publishing event: %w", err)
	}

	p.logger.Info("event published",
		zap.String("event_type", event.EventType()),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence),
	)
	return nil
}

func (p *Publisher) subjectFor(event domainevents.Event) string {
	return fmt.Sprintf("%s.%s", p.client.config.NATS.SubjectPrefix, event.EventType())
}
