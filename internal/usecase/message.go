// Package usecase contains the business logic for booking submission.
// It formats the operator notification, builds the WhatsApp deep link, and
// fans out to the best-effort side channels (email, event stream, storage).
package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// whatsAppBaseURL is the messaging-service deep link base. The phone number
// is appended from config, the message as a percent-encoded text parameter.
const whatsAppBaseURL = "https://wa.me/"

// FormatBookingMessage renders the plain-text operator notification for a
// booking request. Every field is always present: a missing return date
// renders as "One way", missing special requests as "None", and blank
// origin/destination render as empty parentheses so the template stays
// stable. Codes are upper-cased for display.
func FormatBookingMessage(req domain.BookingRequest) string {
	from := ""
	if req.From != "" {
		from = "(" + strings.ToUpper(req.From) + ")"
	}
	to := ""
	if req.To != "" {
		to = "(" + strings.ToUpper(req.To) + ")"
	}

	returnDate := req.ReturnDate
	if returnDate == "" {
		returnDate = "One way"
	}
	specialRequests := req.SpecialRequests
	if specialRequests == "" {
		specialRequests = "None"
	}

	return fmt.Sprintf(`🛫 NEW FLIGHT BOOKING REQUEST

👤 Name: %s
📧 Email: %s
📱 Phone: %s

✈️ FLIGHT DETAILS:
📍 From: %s
📍 To: %s
📅 Departure: %s
📅 Return: %s
👥 Passengers: %s
🎫 Class: %s

💬 Special Requests: %s

Please contact the customer within 24 hours.`,
		req.FullName, req.Email, req.Phone,
		from, to,
		req.DepartureDate, returnDate,
		req.Passengers, req.Class,
		specialRequests)
}

// BuildWhatsAppURL builds the deep link for the given destination number and
// pre-filled message text.
func BuildWhatsAppURL(number, message string) string {
	return whatsAppBaseURL + number + "?text=" + url.QueryEscape(message)
}
