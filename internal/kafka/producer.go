package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// AirlineEvent is published on every catalog mutation.
type AirlineEvent struct {
	Type       string    `json:"type"`
	AirlineID  string    `json:"airline_id"`
	Name       string    `json:"name"`
	IATACode   string    `json:"iata_code"`
	ICAOCode   string    `json:"icao_code"`
	Country    string    `json:"country"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventAirlineCreated = "airline_created"
	EventAirlineUpdated = "airline_updated"
	EventAirlineDeleted = "airline_deleted"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
