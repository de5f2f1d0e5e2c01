package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
	"github.com/snsp-travel/travel-booking-service/internal/repository"
)

// Caller-visible result messages.
const (
	MsgBookingReceived = "Booking request received successfully"
	MsgBookingFailed   = "Failed to process booking request"
)

// DefaultEmailTimeout bounds the asynchronous confirmation email send.
const DefaultEmailTimeout = 15 * time.Second

// Mailer sends the customer confirmation email. Implementations must treat
// the send as at-most-once; the use case never retries delivery.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, req domain.BookingRequest) error
}

// EventPublisher announces accepted bookings to the notification pipeline.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking domain.Booking) error
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

// PublishBookingCreated implements EventPublisher.
func (NoopPublisher) PublishBookingCreated(context.Context, domain.Booking) error { return nil }

// BookingUseCase defines the booking submission operation.
type BookingUseCase interface {
	// Submit accepts one booking request snapshot, notifies the operator
	// through the deep link and email channels, and reports one aggregate
	// result. The result is successful once the message and link are built;
	// side-channel failures are logged, never surfaced.
	Submit(ctx context.Context, req domain.BookingRequest) domain.NotificationResult
}

// Config contains configuration options for the booking use case.
type Config struct {
	// WhatsAppNumber is the destination phone number for the deep link,
	// digits only, with country code.
	WhatsAppNumber string

	// EmailTimeout bounds the asynchronous confirmation email send.
	EmailTimeout time.Duration
}

type bookingUseCase struct {
	repo   repository.BookingRepository
	mailer Mailer
	events EventPublisher
	clock  timeutil.Clock
	log    zerolog.Logger

	whatsAppNumber string
	emailTimeout   time.Duration
}

// NewBookingUseCase creates a BookingUseCase with the given collaborators.
// A nil events publisher falls back to NoopPublisher, a nil clock to the
// system clock.
func NewBookingUseCase(repo repository.BookingRepository, mailer Mailer, events EventPublisher, clock timeutil.Clock, log zerolog.Logger, cfg Config) BookingUseCase {
	if events == nil {
		events = NoopPublisher{}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if cfg.EmailTimeout <= 0 {
		cfg.EmailTimeout = DefaultEmailTimeout
	}

	return &bookingUseCase{
		repo:           repo,
		mailer:         mailer,
		events:         events,
		clock:          clock,
		log:            log,
		whatsAppNumber: cfg.WhatsAppNumber,
		emailTimeout:   cfg.EmailTimeout,
	}
}

// Submit implements BookingUseCase.
func (uc *bookingUseCase) Submit(ctx context.Context, req domain.BookingRequest) (result domain.NotificationResult) {
	// Mirror the reference behavior: any panic while building the message or
	// link becomes the generic failure result instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			uc.log.Error().Interface("panic", r).Msg("Booking submission failed")
			result = domain.NotificationResult{Success: false, Message: MsgBookingFailed}
		}
	}()

	message := FormatBookingMessage(req)
	whatsAppURL := BuildWhatsAppURL(uc.whatsAppNumber, message)

	booking := domain.Booking{
		ID:             uuid.NewString(),
		CreatedAt:      uc.clock.Now(),
		BookingRequest: req,
	}

	// Storage and the event stream are best-effort side channels: the
	// caller-visible result depends only on the message + link above.
	if err := uc.repo.Add(ctx, &booking); err != nil {
		uc.log.Warn().Err(err).Msg("Failed to store booking")
	}
	if err := uc.events.PublishBookingCreated(ctx, booking); err != nil {
		uc.log.Warn().Err(err).Str("booking_id", booking.ID).Msg("Failed to publish booking event")
	}

	// Fire-and-forget confirmation email. The HTTP response must not block
	// on delivery, so the send runs on its own context with a timeout.
	go uc.sendConfirmation(booking.ID, req)

	uc.log.Info().
		Str("booking_id", booking.ID).
		Str("from", req.From).
		Str("to", req.To).
		Msg("Booking request received")

	return domain.NotificationResult{
		Success:     true,
		Message:     MsgBookingReceived,
		WhatsAppURL: whatsAppURL,
	}
}

func (uc *bookingUseCase) sendConfirmation(bookingID string, req domain.BookingRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.emailTimeout)
	defer cancel()

	if err := uc.mailer.SendBookingConfirmation(ctx, req); err != nil {
		uc.log.Error().Err(err).Str("booking_id", bookingID).Msg("Failed to send confirmation email")
		return
	}
	uc.log.Info().Str("booking_id", bookingID).Str("email", req.Email).Msg("Confirmation email sent")
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
