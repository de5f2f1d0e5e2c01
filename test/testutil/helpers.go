// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// WriteAirportCSV writes CSV content to a temp file and returns its path.
// The file is removed when the test finishes.
func WriteAirportCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "airports.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write airport CSV: %v", err)
	}
	return path
}

// SampleBookingRequest returns a complete round-trip booking request.
// Tests mutate the fields they care about.
func SampleBookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+15551234567",
		From:          "LOS",
		To:            "LHR",
		DepartureDate: "2025-07-01",
		ReturnDate:    "2025-07-15",
		Passengers:    "2",
		Class:         "economy",
	}
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
