package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"tally-service/internal/models"
)

// Publisher pushes change events onto the event stream. Services hold this
// interface so tests can substitute a recorder.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by agent id, so one
// agent's events stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AgentID),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when the broker is not configured and in
// tests that do not assert on the stream.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event models.Event) error { return nil }
func (NopPublisher) Close() error                                          { return nil }
