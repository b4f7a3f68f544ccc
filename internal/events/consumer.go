package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/IBM/sarama"

	"tally-service/internal/models"
	"tally-service/internal/ws"
)

// Consumer reads the event topic and feeds the websocket hub, completing the
// publish side's pipeline. It runs as a consumer group so multiple service
// replicas split partitions instead of double-delivering.
type Consumer struct {
	group sarama.ConsumerGroup
	topic string
	hub   *ws.Hub
}

func NewConsumer(brokers []string, groupID, topic string, hub *ws.Hub) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_0_0_0
	config.ClientID = "tally-service"
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}
	return &Consumer{group: group, topic: topic, hub: hub}, nil
}

// Run blocks until ctx is cancelled, rejoining the group after rebalances.
func (c *Consumer) Run(ctx context.Context) error {
	handler := &hubHandler{hub: c.hub}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("consumer group session failed", "error", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type hubHandler struct {
	hub *ws.Hub
}

func (h *hubHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *hubHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *hubHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event models.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Warn("skipping malformed event", "offset", msg.Offset, "error", err)
			session.MarkMessage(msg, "")
			continue
		}
		h.hub.Broadcast <- event
		session.MarkMessage(msg, "")
	}
	return nil
}
