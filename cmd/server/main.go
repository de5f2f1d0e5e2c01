// Package main is the entry point for the travel booking service.
//
//	@title						SN-SP Travel Booking API
//	@version					1.0.0
//	@description				Travel agency backend: airport autocomplete, flight booking requests with WhatsApp follow-up, contact inquiries, and a small admin back office.
//
//	@contact.name				SN-SP Travel Support
//
//	@host						localhost:8080
//	@BasePath					/api
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/event"
	apihttp "github.com/snsp-travel/travel-booking-service/internal/adapter/http"
	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/middleware"
	"github.com/snsp-travel/travel-booking-service/internal/adapter/mail"
	"github.com/snsp-travel/travel-booking-service/internal/airport"
	"github.com/snsp-travel/travel-booking-service/internal/auth"
	"github.com/snsp-travel/travel-booking-service/internal/config"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/logger"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
	"github.com/snsp-travel/travel-booking-service/internal/repository"
	"github.com/snsp-travel/travel-booking-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-booking",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	ctx := context.Background()
	clock := timeutil.NewRealClock()

	// Airport dataset; a failed load degrades to an empty index.
	index := airport.MustLoad(ctx, cfg.Airports.Source, log)

	// Storage
	bookings, inquiries, cleanup, err := setupStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up storage")
	}
	defer cleanup()

	// Outbound email
	mailer := mail.New(mail.Config{
		APIKey:         cfg.Mail.APIKey,
		From:           cfg.Mail.From,
		SupportEmail:   cfg.Mail.SupportEmail,
		WhatsAppNumber: cfg.Booking.WhatsAppNumber,
	}, log)

	// Booking event pipeline
	var events usecase.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := event.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.BookingsTopic, log)
		defer producer.Close()
		events = producer
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.BookingsTopic).Msg("Booking events enabled")
	} else {
		events = usecase.NoopPublisher{}
		log.Info().Msg("No Kafka brokers configured, booking events disabled")
	}

	bookingUC := usecase.NewBookingUseCase(bookings, mailer, events, clock, log, usecase.Config{
		WhatsAppNumber: cfg.Booking.WhatsAppNumber,
		EmailTimeout:   cfg.Booking.EmailTimeout,
	})

	// Admin sessions
	sessionStore, err := setupSessionStore(ctx, cfg, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up session store")
	}
	authSvc := auth.NewService(auth.Credentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, sessionStore, cfg.Admin.SessionTTL, clock, log)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	apihttp.RegisterRoutes(e, apihttp.Handlers{
		Booking: apihttp.NewBookingHandler(bookingUC, clock),
		Airport: apihttp.NewAirportHandler(index, cfg.Airports.SearchLimit),
		Contact: apihttp.NewContactHandler(inquiries, mailer, cfg.Mail.SupportEmail, clock, log),
		Admin:   apihttp.NewAdminHandler(authSvc, bookings, inquiries, log),
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupStorage selects the booking and inquiry stores per configuration.
// Inquiries always live in memory; only bookings move to Postgres.
func setupStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.BookingRepository, repository.InquiryRepository, func(), error) {
	inquiries := repository.NewMemoryInquiryRepository()

	if cfg.Storage.Driver != "postgres" {
		log.Info().Msg("Using in-memory booking store")
		return repository.NewMemoryBookingRepository(), inquiries, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Storage.DSN())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	repo := repository.NewPGBookingRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Info().Str("host", cfg.Storage.Host).Str("db", cfg.Storage.Name).Msg("Using Postgres booking store")
	return repo, inquiries, pool.Close, nil
}

// setupSessionStore selects the admin session backend per configuration.
func setupSessionStore(ctx context.Context, cfg *config.Config, clock timeutil.Clock, log zerolog.Logger) (auth.SessionStore, error) {
	if cfg.Admin.SessionStore != "redis" {
		log.Info().Msg("Using in-memory session store")
		return auth.NewMemoryStore(clock), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis session store")
	return auth.NewRedisStore(client), nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
