package domain

import "time"

// BookingRequest is the flight-booking form payload as submitted by a customer.
// Required-field enforcement lives in the submitting form; the server accepts the
// snapshot as-is and formats it faithfully, including blank fields.
type BookingRequest struct {
	// FullName is the customer's name.
	FullName string `json:"fullName"`

	// Email is the customer's email address, used for the confirmation email.
	Email string `json:"email"`

	// Phone is the customer's phone number.
	Phone string `json:"phone"`

	// From is the origin IATA code. Populated via suggestion selection; free-typed
	// text that never matched a suggestion is retained and sent as-is.
	From string `json:"from"`

	// To is the destination IATA code, same rules as From.
	To string `json:"to"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format.
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date. Empty means one-way.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the passenger count as the form sends it: "1".."4" or "5+".
	Passengers string `json:"passengers"`

	// Class is the travel class: Economy, Premium Economy, Business, or First.
	Class string `json:"class"`

	// SpecialRequests is optional free text.
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// NotificationResult is the outcome of a booking submission reported to the caller.
type NotificationResult struct {
	// Success is true once the notification message and deep link were built,
	// regardless of the email channel's outcome.
	Success bool `json:"success"`

	// Message is a human-readable status line.
	Message string `json:"message"`

	// WhatsAppURL is the fully formed deep link the caller may open.
	// Present only on success.
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// Booking is a stored booking request with server-assigned identity.
type Booking struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	BookingRequest
}

// Inquiry is a contact-form message from a site visitor.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
