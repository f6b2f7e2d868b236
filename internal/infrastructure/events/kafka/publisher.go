package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/streamhaven/catalog/internal/config"
	domainevents "github.com/streamhaven/catalog/internal/domain/events"
)

// Publisher implements events.Publisher on Kafka. Events are keyed by
// aggregate id so all events of one video land on the same partition in
// order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

// NewPublisher creates a Kafka event publisher.
func NewPublisher(cfg *config.Config, logger *zap.Logger) (*Publisher, func(), error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Idempotent = true
	saramaCfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating Kafka producer: %w", err)
	}

	p := &Publisher{
		producer: producer,
		topic:    cfg.Kafka.Topic,
		logger:   logger.Named("kafka"),
	}
	cleanup := func() {
		if err := producer.Close(); err != nil {
			logger.Error("failed to close Kafka producer", zap.Error(err))
		}
	}
	return p, cleanup, nil
}

// Publish sends a domain event to the configured topic.
func (p *Publisher) Publish(ctx context.Context, event domainevents.Event) error {
	data, err := json.Marshal(domainevents.NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.AggregateID()),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType())},
			{Key: []byte("aggregate_type"), Value: []byte(event.AggregateType())},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID()),
		)
		return fmt.Errorf("publishing event: %w", err)
	}

	p.logger.Info("event published",
		zap.String("event_type", event.EventType()),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}
