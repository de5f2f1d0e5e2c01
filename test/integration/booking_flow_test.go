package integration

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// decodeDeepLinkText extracts and decodes the text parameter of a wa.me link.
func decodeDeepLinkText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

// TestBookingFlow_EndToEnd submits a booking and verifies every channel.
func TestBookingFlow_EndToEnd(t *testing.T) {
	// Arrange
	ts := NewTestServer()

	// Act
	resp := ts.SubmitBooking(DefaultBookingBody())

	// Assert response contract
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.NotificationResult
	require.NoError(t, resp.ParseJSON(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "Booking request received successfully", result.Message)
	require.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/2347032615370?text="))

	// The deep link carries the full operator message.
	text := decodeDeepLinkText(t, result.WhatsAppURL)
	assert.Contains(t, text, "NEW FLIGHT BOOKING REQUEST")
	assert.Contains(t, text, "Name: Jane Doe")
	assert.Contains(t, text, "From: (LOS)")
	assert.Contains(t, text, "To: (LHR)")
	assert.Contains(t, text, "Return: 2025-07-15")
	assert.Contains(t, text, "Please contact the customer within 24 hours.")

	// Stored with identity and timestamp.
	stored, err := ts.Bookings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEmpty(t, stored[0].ID)
	assert.Equal(t, ts.Clock.Now(), stored[0].CreatedAt)

	// Published to the event pipeline.
	assert.Equal(t, 1, ts.Publisher.EventCount())

	// Confirmation email is asynchronous.
	require.Eventually(t, func() bool {
		return ts.Mailer.ConfirmationCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "jane@example.com", ts.Mailer.Confirmations[0].Email)
}

// TestBookingFlow_OneWayFallbacks verifies optional field rendering.
func TestBookingFlow_OneWayFallbacks(t *testing.T) {
	ts := NewTestServer()

	body := DefaultBookingBody()
	delete(body, "returnDate")
	body["from"] = ""
	body["to"] = ""

	resp := ts.SubmitBooking(body)
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.NotificationResult
	require.NoError(t, resp.ParseJSON(&result))

	text := decodeDeepLinkText(t, result.WhatsAppURL)
	assert.Contains(t, text, "Return: One way")
	assert.Contains(t, text, "Special Requests: None")
	assert.Contains(t, text, "From: ()")
	assert.Contains(t, text, "To: ()")
}

// TestBookingFlow_MalformedBody verifies the generic failure shape.
func TestBookingFlow_MalformedBody(t *testing.T) {
	ts := NewTestServer()

	httpResp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/flight-booking",
		Body:   "not an object",
	})

	require.Equal(t, http.StatusInternalServerError, httpResp.Code)

	var result domain.NotificationResult
	require.NoError(t, httpResp.ParseJSON(&result))
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to process booking request", result.Message)
	assert.Empty(t, result.WhatsAppURL)
}

// TestBookingFlow_MailFailureInvisible verifies email is best effort.
func TestBookingFlow_MailFailureInvisible(t *testing.T) {
	ts := NewTestServer()
	ts.Mailer.Err = assert.AnError

	resp := ts.SubmitBooking(DefaultBookingBody())
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.NotificationResult
	require.NoError(t, resp.ParseJSON(&result))
	assert.True(t, result.Success)
}

// TestBookingFlow_PublishFailureInvisible verifies events are best effort.
func TestBookingFlow_PublishFailureInvisible(t *testing.T) {
	ts := NewTestServer()
	ts.Publisher.Err = assert.AnError

	resp := ts.SubmitBooking(DefaultBookingBody())
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.NotificationResult
	require.NoError(t, resp.ParseJSON(&result))
	assert.True(t, result.Success)

	// The booking was still stored.
	stored, err := ts.Bookings.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
