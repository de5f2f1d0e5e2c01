package http

import (
	"time"

	"github.com/snsp-travel/travel-booking-service/internal/airport"
	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// AirportDTO is the data transfer object for airport suggestions.
type AirportDTO struct {
	IATA    string `json:"iata"`
	ICAO    string `json:"icao,omitempty"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	// Display is the canonical suggestion label,
	// e.g. "LHR - Heathrow Airport, London, United Kingdom".
	Display string `json:"display"`
}

// AirportSearchResponseDTO wraps a list of airport suggestions.
type AirportSearchResponseDTO struct {
	Airports []AirportDTO `json:"airports"`
	Total    int          `json:"total"`
}

// ToAirportDTO converts a domain record to its API representation.
func ToAirportDTO(rec domain.AirportRecord) AirportDTO {
	return AirportDTO{
		IATA:    rec.IATA,
		ICAO:    rec.ICAO,
		Name:    rec.Name,
		City:    rec.City,
		Country: rec.Country,
		Display: airport.DisplayString(rec),
	}
}

// ToAirportSearchResponse converts search results to the API response.
func ToAirportSearchResponse(recs []domain.AirportRecord) AirportSearchResponseDTO {
	dtos := make([]AirportDTO, 0, len(recs))
	for _, rec := range recs {
		dtos = append(dtos, ToAirportDTO(rec))
	}
	return AirportSearchResponseDTO{
		Airports: dtos,
		Total:    len(dtos),
	}
}

// BookingDTO is the admin-facing representation of a stored booking.
type BookingDTO struct {
	ID              string `json:"id"`
	CreatedAt       string `json:"createdAt"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	From            string `json:"from,omitempty"`
	To              string `json:"to,omitempty"`
	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate,omitempty"`
	Passengers      string `json:"passengers"`
	Class           string `json:"class"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingListResponseDTO wraps the admin booking list.
type BookingListResponseDTO struct {
	Bookings []BookingDTO `json:"bookings"`
	Total    int          `json:"total"`
}

// ToBookingDTO converts a stored booking to its API representation.
func ToBookingDTO(b domain.Booking) BookingDTO {
	return BookingDTO{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		From:            b.From,
		To:              b.To,
		DepartureDate:   b.DepartureDate,
		ReturnDate:      b.ReturnDate,
		Passengers:      b.Passengers,
		Class:           b.Class,
		SpecialRequests: b.SpecialRequests,
	}
}

// InquiryDTO is the admin-facing representation of a stored inquiry.
type InquiryDTO struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// InquiryListResponseDTO wraps the admin inquiry list.
type InquiryListResponseDTO struct {
	Inquiries []InquiryDTO `json:"inquiries"`
	Total     int          `json:"total"`
}

// ToInquiryDTO converts a stored inquiry to its API representation.
func ToInquiryDTO(inq domain.Inquiry) InquiryDTO {
	return InquiryDTO{
		ID:        inq.ID,
		CreatedAt: inq.CreatedAt.UTC().Format(time.RFC3339),
		Name:      inq.Name,
		Email:     inq.Email,
		Subject:   inq.Subject,
		Message:   inq.Message,
	}
}

// LoginResponseDTO carries the minted admin session token.
type LoginResponseDTO struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// InquiryAcceptedDTO acknowledges a contact form submission.
type InquiryAcceptedDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
