package mail

import (
	"html/template"
	"strings"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// Email bodies fall back to "Not specified" for missing route codes,
// unlike the WhatsApp message which renders empty parentheses.

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"orNotSpecified": func(s string) string {
		if s == "" {
			return "Not specified"
		}
		return strings.ToUpper(s)
	},
	"orOneWay": func(s string) string {
		if s == "" {
			return "One way"
		}
		return s
	},
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Thank you for your flight booking request!</h2>

  <p>Dear {{.Request.FullName}},</p>

  <p>We have successfully received your flight booking request. Our team will review your requirements and contact you within 24 hours with personalized flight options.</p>

  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #374151;">Your Booking Details:</h3>
    <p><strong>From:</strong> {{orNotSpecified .Request.From}}</p>
    <p><strong>To:</strong> {{orNotSpecified .Request.To}}</p>
    <p><strong>Departure Date:</strong> {{.Request.DepartureDate}}</p>
    <p><strong>Return Date:</strong> {{orOneWay .Request.ReturnDate}}</p>
    <p><strong>Passengers:</strong> {{.Request.Passengers}}</p>
    <p><strong>Class:</strong> {{.Request.Class}}</p>
    {{if .Request.SpecialRequests}}<p><strong>Special Requests:</strong> {{.Request.SpecialRequests}}</p>{{end}}
  </div>

  <p>If you have any immediate questions, please don't hesitate to contact us:</p>
  <ul>
    <li>WhatsApp: {{.WhatsAppNumber}}</li>
    <li>Email: {{.SupportEmail}}</li>
  </ul>

  <p>Thank you for choosing SN-SP Travel!</p>

  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">
  <p style="color: #6b7280; font-size: 14px;">
    This is an automated confirmation email. Please do not reply to this email.
  </p>
</div>`))

type confirmationData struct {
	Request        domain.BookingRequest
	SupportEmail   string
	WhatsAppNumber string
}

func renderConfirmation(data confirmationData) (string, error) {
	var sb strings.Builder
	if err := confirmationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var notificationTmpl = template.Must(template.New("notification").Funcs(template.FuncMap{
	"orNotSpecified": func(s string) string {
		if s == "" {
			return "Not specified"
		}
		return strings.ToUpper(s)
	},
	"orOneWay": func(s string) string {
		if s == "" {
			return "One way"
		}
		return s
	},
	"orNone": func(s string) string {
		if s == "" {
			return "None"
		}
		return s
	},
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Flight Booking Request</h2>

  <p><strong>Booking ID:</strong> {{.Booking.ID}}</p>
  <p><strong>Received:</strong> {{.Booking.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</p>

  <h3>Customer</h3>
  <p><strong>Name:</strong> {{.Booking.FullName}}</p>
  <p><strong>Email:</strong> {{.Booking.Email}}</p>
  <p><strong>Phone:</strong> {{.Booking.Phone}}</p>

  <h3>Flight Details</h3>
  <p><strong>From:</strong> {{orNotSpecified .Booking.From}}</p>
  <p><strong>To:</strong> {{orNotSpecified .Booking.To}}</p>
  <p><strong>Departure:</strong> {{.Booking.DepartureDate}}</p>
  <p><strong>Return:</strong> {{orOneWay .Booking.ReturnDate}}</p>
  <p><strong>Passengers:</strong> {{.Booking.Passengers}}</p>
  <p><strong>Class:</strong> {{.Booking.Class}}</p>
  <p><strong>Special Requests:</strong> {{orNone .Booking.SpecialRequests}}</p>

  <p>Please contact the customer within 24 hours.</p>
</div>`))

type notificationData struct {
	Booking domain.Booking
}

func renderNotification(data notificationData) (string, error) {
	var sb strings.Builder
	if err := notificationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var inquiryTmpl = template.Must(template.New("inquiry").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Inquiry</h2>

  <p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Received:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</p>

  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p>{{.Message}}</p>
  </div>
</div>`))

func renderInquiry(inq domain.Inquiry) (string, error) {
	var sb strings.Builder
	if err := inquiryTmpl.Execute(&sb, inq); err != nil {
		return "", err
	}
	return sb.String(), nil
}
