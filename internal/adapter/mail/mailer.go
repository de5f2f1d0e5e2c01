// Package mail sends transactional email through the Resend HTTP API.
// When no API key is configured the mailer runs in mock mode and logs
// the message instead of sending it.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

const defaultAPIURL = "https://api.resend.com/emails"

// Config holds mailer settings.
type Config struct {
	// APIKey authenticates against the API. Empty enables mock mode.
	APIKey string

	// From is the sender, e.g. `SN-SP Travel <noreply@snsp.com>`.
	From string

	// SupportEmail is shown in the customer-facing contact block.
	SupportEmail string

	// WhatsAppNumber is shown alongside the support email, digits only.
	WhatsAppNumber string

	// APIURL overrides the API endpoint, used in tests.
	APIURL string
}

// message is the API request payload.
type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// Mailer sends booking and inquiry email.
type Mailer struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

// New creates a Mailer.
func New(cfg Config, log zerolog.Logger) *Mailer {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	return &Mailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With().Str("component", "mailer").Logger(),
	}
}

// SendBookingConfirmation emails the customer a summary of their request.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, req domain.BookingRequest) error {
	html, err := renderConfirmation(confirmationData{
		Request:        req,
		SupportEmail:   m.cfg.SupportEmail,
		WhatsAppNumber: formatPhone(m.cfg.WhatsAppNumber),
	})
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	return m.send(ctx, message{
		From:    m.cfg.From,
		To:      req.Email,
		Subject: "Flight Booking Request Confirmation - SN-SP Travel",
		HTML:    html,
		Text:    fmt.Sprintf("Dear %s, we have received your flight booking request and will contact you within 24 hours.", req.FullName),
	})
}

// SendBookingNotification emails the operator about a new booking. Used by
// the worker when it consumes a booking event.
func (m *Mailer) SendBookingNotification(ctx context.Context, to string, booking domain.Booking) error {
	html, err := renderNotification(notificationData{Booking: booking})
	if err != nil {
		return fmt.Errorf("render notification email: %w", err)
	}

	return m.send(ctx, message{
		From:    m.cfg.From,
		To:      to,
		Subject: fmt.Sprintf("New Flight Booking Request [%s]", booking.ID),
		HTML:    html,
	})
}

// SendInquiryNotification forwards a contact form inquiry to the support inbox.
func (m *Mailer) SendInquiryNotification(ctx context.Context, to string, inq domain.Inquiry) error {
	html, err := renderInquiry(inq)
	if err != nil {
		return fmt.Errorf("render inquiry email: %w", err)
	}

	return m.send(ctx, message{
		From:    m.cfg.From,
		To:      to,
		Subject: fmt.Sprintf("New Inquiry: %s", inq.Subject),
		HTML:    html,
	})
}

func (m *Mailer) send(ctx context.Context, msg message) error {
	if m.cfg.APIKey == "" {
		m.log.Info().
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("No mail API key configured, mock email triggered")
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned %s: %w", resp.Status, domain.ErrDeliveryFailed)
	}

	m.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email sent")
	return nil
}

// formatPhone renders a digits-only number as an international display
// number, e.g. "2347032615370" becomes "+234 703 261 5370".
func formatPhone(digits string) string {
	if len(digits) != 13 {
		return "+" + digits
	}
	return fmt.Sprintf("+%s %s %s %s", digits[:3], digits[3:6], digits[6:9], digits[9:])
}
