// Package repository provides persistence for bookings and inquiries.
// Implementations are injected into the use case and handlers; there is no
// module-level singleton.
package repository

import (
	"context"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// BookingRepository stores accepted booking requests and backs the admin
// booking list. The submission flow treats writes as best-effort; reads serve
// the back-office only.
type BookingRepository interface {
	// Add stores a booking.
	Add(ctx context.Context, booking *domain.Booking) error

	// List returns all bookings in insertion order.
	List(ctx context.Context) ([]domain.Booking, error)

	// GetByID returns the booking with the given ID, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// InquiryRepository stores contact-form inquiries for the admin inbox.
type InquiryRepository interface {
	// Add stores an inquiry.
	Add(ctx context.Context, inquiry *domain.Inquiry) error

	// List returns all inquiries in insertion order.
	List(ctx context.Context) ([]domain.Inquiry, error)
}
