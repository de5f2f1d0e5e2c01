// Package http provides the HTTP handler layer for the travel booking API.
package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/middleware"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Booking *BookingHandler
	Airport *AirportHandler
	Contact *ContactHandler
	Admin   *AdminHandler
}

// RegisterRoutes registers all API routes.
func RegisterRoutes(e *echo.Echo, h Handlers, authn middleware.Authenticator) {
	// Health check endpoint (no prefix)
	e.GET("/health", h.Booking.Health)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public endpoints
	api.POST("/flight-booking", h.Booking.SubmitBooking)
	api.POST("/contact", h.Contact.SubmitInquiry)

	airports := api.Group("/airports")
	airports.GET("/search", h.Airport.SearchAirports)
	airports.GET("/:iata", h.Airport.ResolveAirport)

	// Admin endpoints; login is open, the rest require a session
	admin := api.Group("/admin")
	admin.POST("/login", h.Admin.Login)

	authed := admin.Group("", middleware.RequireSession(authn))
	authed.POST("/logout", h.Admin.Logout)
	authed.GET("/bookings", h.Admin.ListBookings)
	authed.GET("/inquiries", h.Admin.ListInquiries)
}
