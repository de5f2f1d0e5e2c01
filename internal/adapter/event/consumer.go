package event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Handler processes a decoded booking event.
type Handler func(ctx context.Context, event BookingEvent) error

// Consumer reads booking events from a Kafka topic as part of a
// consumer group.
type Consumer struct {
	reader *kafka.Reader
	log    zerolog.Logger
}

// NewConsumer creates a Consumer for the given brokers, group, and topic.
func NewConsumer(brokers []string, groupID, topic string, log zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log.With().Str("component", "event_consumer").Logger(),
	}
}

// Run consumes events until the context is cancelled. Undecodable messages
// are logged and skipped; handler errors are logged and the message is
// still committed so one bad event cannot stall the group.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn().Err(err).
				Str("key", string(msg.Key)).
				Msg("Skipping undecodable event")
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.log.Error().Err(err).
				Str("booking_id", event.BookingID).
				Msg("Event handler failed")
		}
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
