// Package event publishes and consumes booking events over Kafka.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/retry"
	"github.com/snsp-travel/travel-booking-service/internal/usecase"
)

// BookingCreatedType identifies new-booking events on the wire.
const BookingCreatedType = "booking.created"

// BookingEvent is the wire format for booking events.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"bookingId"`
	OccurredAt time.Time `json:"occurredAt"`

	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	From            string `json:"from,omitempty"`
	To              string `json:"to,omitempty"`
	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate,omitempty"`
	Passengers      string `json:"passengers"`
	Class           string `json:"class"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// newBookingEvent flattens a booking into its wire representation.
func newBookingEvent(b domain.Booking) BookingEvent {
	return BookingEvent{
		Type:            BookingCreatedType,
		BookingID:       b.ID,
		OccurredAt:      b.CreatedAt,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		From:            b.From,
		To:              b.To,
		DepartureDate:   b.DepartureDate,
		ReturnDate:      b.ReturnDate,
		Passengers:      b.Passengers,
		Class:           b.Class,
		SpecialRequests: b.SpecialRequests,
	}
}

// Booking reconstructs the domain booking carried by the event.
func (e BookingEvent) Booking() domain.Booking {
	return domain.Booking{
		ID:        e.BookingID,
		CreatedAt: e.OccurredAt,
		BookingRequest: domain.BookingRequest{
			FullName:        e.FullName,
			Email:           e.Email,
			Phone:           e.Phone,
			From:            e.From,
			To:              e.To,
			DepartureDate:   e.DepartureDate,
			ReturnDate:      e.ReturnDate,
			Passengers:      e.Passengers,
			Class:           e.Class,
			SpecialRequests: e.SpecialRequests,
		},
	}
}

// Producer publishes booking events to a Kafka topic.
type Producer struct {
	writer   *kafka.Writer
	topic    string
	log      zerolog.Logger
	retryCfg retry.Config
}

// Compile-time interface check.
var _ usecase.EventPublisher = (*Producer)(nil)

// NewProducer creates a Producer for the given brokers and topic.
func NewProducer(brokers []string, topic string, log zerolog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer:   writer,
		topic:    topic,
		log:      log.With().Str("component", "event_producer").Logger(),
		retryCfg: retry.DefaultConfig.WithMaxAttempts(3),
	}
}

// PublishBookingCreated publishes a booking.created event, keyed by booking ID.
func (p *Producer) PublishBookingCreated(ctx context.Context, booking domain.Booking) error {
	value, err := json.Marshal(newBookingEvent(booking))
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(booking.ID),
		Value: value,
		Time:  booking.CreatedAt,
	}

	err = retry.Do(ctx, func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, p.retryCfg)
	if err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}

	p.log.Info().
		Str("booking_id", booking.ID).
		Str("topic", p.topic).
		Msg("Booking event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
