package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// MemoryBookingRepository is an in-memory, mutex-guarded booking store.
// Suitable for development and tests; bookings do not survive a restart.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewMemoryBookingRepository creates an empty in-memory booking store.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

// Add implements BookingRepository.
func (r *MemoryBookingRepository) Add(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *booking)
	return nil
}

// List implements BookingRepository.
func (r *MemoryBookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// GetByID implements BookingRepository.
func (r *MemoryBookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
}

// MemoryInquiryRepository is an in-memory, mutex-guarded inquiry store.
type MemoryInquiryRepository struct {
	mu        sync.RWMutex
	inquiries []domain.Inquiry
}

// NewMemoryInquiryRepository creates an empty in-memory inquiry store.
func NewMemoryInquiryRepository() *MemoryInquiryRepository {
	return &MemoryInquiryRepository{}
}

// Add implements InquiryRepository.
func (r *MemoryInquiryRepository) Add(_ context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, *inquiry)
	return nil
}

// List implements InquiryRepository.
func (r *MemoryInquiryRepository) List(_ context.Context) ([]domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Inquiry, len(r.inquiries))
	copy(out, r.inquiries)
	return out, nil
}

// Ensure interfaces are implemented.
var (
	_ BookingRepository = (*MemoryBookingRepository)(nil)
	_ InquiryRepository = (*MemoryInquiryRepository)(nil)
)
