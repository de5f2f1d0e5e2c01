// Package main is the booking notification worker. It consumes booking
// events from Kafka and emails the operator about each new request.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/event"
	"github.com/snsp-travel/travel-booking-service/internal/adapter/mail"
	"github.com/snsp-travel/travel-booking-service/internal/config"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-booking-worker",
	})

	if !cfg.Kafka.Enabled() {
		log.Fatal().Msg("KAFKA_BROKERS must be set for the worker")
	}

	mailer := mail.New(mail.Config{
		APIKey:         cfg.Mail.APIKey,
		From:           cfg.Mail.From,
		SupportEmail:   cfg.Mail.SupportEmail,
		WhatsAppNumber: cfg.Booking.WhatsAppNumber,
	}, log)

	consumer := event.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingsTopic, log)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		log.Info().Str("signal", s.String()).Msg("Shutting down worker")
		cancel()
	}()

	log.Info().
		Strs("brokers", cfg.Kafka.Brokers).
		Str("topic", cfg.Kafka.BookingsTopic).
		Str("group", cfg.Kafka.GroupID).
		Msg("Worker started")

	err := consumer.Run(ctx, func(ctx context.Context, ev event.BookingEvent) error {
		if ev.Type != event.BookingCreatedType {
			log.Debug().Str("type", ev.Type).Msg("Ignoring event")
			return nil
		}
		return mailer.SendBookingNotification(ctx, cfg.Mail.OperatorEmail, ev.Booking())
	})
	if err != nil {
		log.Error().Err(err).Msg("Consumer stopped")
	}

	log.Info().Msg("Worker stopped")
}
