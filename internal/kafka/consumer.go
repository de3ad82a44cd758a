package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded airline event.
type EventHandler func(ctx context.Context, event AirlineEvent) error

// Consumer reads airline events from a topic as part of a consumer group.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume decodes and dispatches events until the context is canceled or the
// handler fails. Messages that do not decode as an AirlineEvent are skipped
// rather than stalling the group.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeAirlineEvent(msg.Value)
		if err != nil {
			continue
		}

		if err := handler(ctx, *event); err != nil {
			return err
		}
	}
}

func decodeAirlineEvent(value []byte) (*AirlineEvent, error) {
	var event AirlineEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("failed to decode airline event: %w", err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("airline event missing type")
	}
	return &event, nil
}
