// Package http provides the HTTP handler layer for the travel booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/response"
	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
	"github.com/snsp-travel/travel-booking-service/internal/usecase"
)

// BookingHandler handles booking submission and the health endpoint.
type BookingHandler struct {
	useCase   usecase.BookingUseCase
	clock     timeutil.Clock
	startedAt time.Time
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase, clock timeutil.Clock) *BookingHandler {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &BookingHandler{
		useCase:   uc,
		clock:     clock,
		startedAt: clock.Now(),
	}
}

// SubmitBooking handles POST /api/flight-booking
//
// @Summary Submit a flight booking request
// @Description Accepts a booking request and returns a WhatsApp deep link for follow-up
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body domain.BookingRequest true "Booking details"
// @Success 200 {object} domain.NotificationResult
// @Failure 500 {object} domain.NotificationResult
// @Router /api/flight-booking [post]
func (h *BookingHandler) SubmitBooking(c echo.Context) error {
	var req domain.BookingRequest

	// A malformed body is reported in the same shape as a processing
	// failure, with no field-level detail.
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, domain.NotificationResult{
			Success: false,
			Message: usecase.MsgBookingFailed,
		})
	}

	result := h.useCase.Submit(c.Request().Context(), req)
	if !result.Success {
		return c.JSON(http.StatusInternalServerError, result)
	}

	return response.OK(c, result)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *BookingHandler) Health(c echo.Context) error {
	now := h.clock.Now()
	return response.Health(c, now, now.Sub(h.startedAt))
}
