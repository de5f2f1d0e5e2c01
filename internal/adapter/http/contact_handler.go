package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/response"
	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
	"github.com/snsp-travel/travel-booking-service/internal/repository"
)

// InquiryMailer forwards contact form inquiries by email.
type InquiryMailer interface {
	SendInquiryNotification(ctx context.Context, to string, inq domain.Inquiry) error
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	inquiries    repository.InquiryRepository
	mailer       InquiryMailer
	supportEmail string
	clock        timeutil.Clock
	log          zerolog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(
	inquiries repository.InquiryRepository,
	mailer InquiryMailer,
	supportEmail string,
	clock timeutil.Clock,
	log zerolog.Logger,
) *ContactHandler {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &ContactHandler{
		inquiries:    inquiries,
		mailer:       mailer,
		supportEmail: supportEmail,
		clock:        clock,
		log:          log.With().Str("component", "contact_handler").Logger(),
	}
}

// SubmitInquiry handles POST /api/contact
//
// @Summary Submit a contact form inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body SubmitInquiryRequest true "Inquiry details"
// @Success 200 {object} InquiryAcceptedDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitInquiry(c echo.Context) error {
	var req SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		var validationErrs *ValidationErrors
		if errors.As(err, &validationErrs) {
			return response.ValidationError(c, validationErrs.ToMap())
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	inq := domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: h.clock.Now(),
	}

	if err := h.inquiries.Add(c.Request().Context(), &inq); err != nil {
		h.log.Error().Err(err).Msg("Failed to store inquiry")
		return response.InternalServerError(c)
	}

	// Forwarding is best effort; a mail failure never fails the request.
	if h.mailer != nil && h.supportEmail != "" {
		if err := h.mailer.SendInquiryNotification(c.Request().Context(), h.supportEmail, inq); err != nil {
			h.log.Warn().Err(err).Str("inquiry_id", inq.ID).Msg("Failed to forward inquiry email")
		}
	}

	return response.OK(c, InquiryAcceptedDTO{
		Success: true,
		Message: "Your inquiry has been received. We will get back to you shortly.",
	})
}
