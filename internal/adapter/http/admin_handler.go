package http

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/middleware"
	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/response"
	"github.com/snsp-travel/travel-booking-service/internal/auth"
	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/repository"
)

// AdminHandler handles the back-office endpoints.
type AdminHandler struct {
	auth      *auth.Service
	bookings  repository.BookingRepository
	inquiries repository.InquiryRepository
	log       zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	authSvc *auth.Service,
	bookings repository.BookingRepository,
	inquiries repository.InquiryRepository,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:      authSvc,
		bookings:  bookings,
		inquiries: inquiries,
		log:       log.With().Str("component", "admin_handler").Logger(),
	}
}

// Login handles POST /api/admin/login
//
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Invalid credentials"
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
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

	sess, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return response.Unauthorized(c)
		}
		h.log.Error().Err(err).Msg("Admin login failed")
		return response.InternalServerError(c)
	}

	return response.OK(c, LoginResponseDTO{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout handles POST /api/admin/logout
//
// @Summary Admin logout
// @Tags admin
// @Security BearerAuth
// @Success 204 "Session revoked"
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c)
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		h.log.Error().Err(err).Msg("Admin logout failed")
		return response.InternalServerError(c)
	}
	return response.NoContent(c)
}

// ListBookings handles GET /api/admin/bookings
//
// @Summary List submitted bookings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} BookingListResponseDTO
// @Failure 401 {object} response.ErrorDetail "Missing or invalid session"
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list bookings")
		return response.InternalServerError(c)
	}

	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, ToBookingDTO(b))
	}

	return response.OK(c, BookingListResponseDTO{
		Bookings: dtos,
		Total:    len(dtos),
	})
}

// ListInquiries handles GET /api/admin/inquiries
//
// @Summary List contact form inquiries
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} InquiryListResponseDTO
// @Failure 401 {object} response.ErrorDetail "Missing or invalid session"
// @Router /api/admin/inquiries [get]
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.inquiries.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list inquiries")
		return response.InternalServerError(c)
	}

	dtos := make([]InquiryDTO, 0, len(inquiries))
	for _, inq := range inquiries {
		dtos = append(dtos, ToInquiryDTO(inq))
	}

	return response.OK(c, InquiryListResponseDTO{
		Inquiries: dtos,
		Total:     len(dtos),
	})
}
