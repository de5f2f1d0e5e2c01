// Package integration provides helpers and integration tests for the travel
// booking service. Integration tests verify that the wired stack behaves
// correctly end to end: HTTP handlers, use case, repositories, sessions, and
// outbound mail.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/snsp-travel/travel-booking-service/internal/adapter/http"
	"github.com/snsp-travel/travel-booking-service/internal/airport"
	"github.com/snsp-travel/travel-booking-service/internal/auth"
	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/logger"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
	"github.com/snsp-travel/travel-booking-service/internal/repository"
	"github.com/snsp-travel/travel-booking-service/internal/usecase"
)

// AdminEmail and AdminPassword are the credentials wired into test servers.
const (
	AdminEmail    = "admin@snsp.com"
	AdminPassword = "s3cret"
)

// RecordingMailer captures outbound email instead of sending it.
type RecordingMailer struct {
	mu            sync.Mutex
	Confirmations []domain.BookingRequest
	Inquiries     []domain.Inquiry
	Err           error
}

func (m *RecordingMailer) SendBookingConfirmation(_ context.Context, req domain.BookingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Confirmations = append(m.Confirmations, req)
	return nil
}

func (m *RecordingMailer) SendInquiryNotification(_ context.Context, _ string, inq domain.Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Inquiries = append(m.Inquiries, inq)
	return nil
}

// ConfirmationCount returns the number of captured confirmation emails.
func (m *RecordingMailer) ConfirmationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Confirmations)
}

// RecordingPublisher captures published booking events.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []domain.Booking
	Err    error
}

func (p *RecordingPublisher) PublishBookingCreated(_ context.Context, booking domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, booking)
	return nil
}

// EventCount returns the number of captured events.
func (p *RecordingPublisher) EventCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Events)
}

// TestServer wraps a fully wired Echo instance for integration testing.
type TestServer struct {
	Echo      *echo.Echo
	Bookings  *repository.MemoryBookingRepository
	Inquiries *repository.MemoryInquiryRepository
	Mailer    *RecordingMailer
	Publisher *RecordingPublisher
	Clock     *timeutil.MockClock
}

// DefaultAirports returns the reference records used by test servers.
func DefaultAirports() []domain.AirportRecord {
	return []domain.AirportRecord{
		{IATA: "LOS", ICAO: "DNMM", Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria"},
		{IATA: "ABV", ICAO: "DNAA", Name: "Nnamdi Azikiwe International Airport", City: "Abuja", Country: "Nigeria"},
		{IATA: "LHR", ICAO: "EGLL", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
		{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle Airport, Roissy", City: "Paris", Country: "France"},
		{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy International Airport", City: "New York", Country: "United States"},
	}
}

// NewTestServer wires the full stack with in-memory collaborators.
func NewTestServer() *TestServer {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	log := logger.Nop()

	bookings := repository.NewMemoryBookingRepository()
	inquiries := repository.NewMemoryInquiryRepository()
	mailer := &RecordingMailer{}
	publisher := &RecordingPublisher{}

	uc := usecase.NewBookingUseCase(bookings, mailer, publisher, clock, log, usecase.Config{
		WhatsAppNumber: "2347032615370",
	})

	index := airport.NewIndex(DefaultAirports())

	authSvc := auth.NewService(
		auth.Credentials{Email: AdminEmail, Password: AdminPassword},
		auth.NewMemoryStore(clock),
		time.Hour,
		clock,
		log,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Booking: httpAdapter.NewBookingHandler(uc, clock),
		Airport: httpAdapter.NewAirportHandler(index, 10),
		Contact: httpAdapter.NewContactHandler(inquiries, mailer, "info@snsp.com", clock, log),
		Admin:   httpAdapter.NewAdminHandler(authSvc, bookings, inquiries, log),
	}, authSvc)

	return &TestServer{
		Echo:      e,
		Bookings:  bookings,
		Inquiries: inquiries,
		Mailer:    mailer,
		Publisher: publisher,
		Clock:     clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
	Token  string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SubmitBooking posts a booking request body.
func (ts *TestServer) SubmitBooking(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/flight-booking", Body: body})
}

// Login authenticates with the wired admin credentials and returns the token.
func (ts *TestServer) Login() (string, Response) {
	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/admin/login",
		Body:   map[string]string{"email": AdminEmail, "password": AdminPassword},
	})
	if resp.Code != http.StatusOK {
		return "", resp
	}

	var body struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(resp.Body, &body)
	return body.Token, resp
}

// ParseJSON unmarshals the response body into out.
func (r *Response) ParseJSON(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// DefaultBookingBody returns a valid booking request body for testing.
func DefaultBookingBody() map[string]string {
	return map[string]string{
		"fullName":      "Jane Doe",
		"email":         "jane@example.com",
		"phone":         "+15551234567",
		"from":          "LOS",
		"to":            "LHR",
		"departureDate": "2025-07-01",
		"returnDate":    "2025-07-15",
		"passengers":    "2",
		"class":         "economy",
	}
}
