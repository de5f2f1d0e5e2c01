package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2025-12-15T08:00:00Z",
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2025-12-15T08:00:00+07:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestWriteAirportCSV(t *testing.T) {
	path := WriteAirportCSV(t, "IATA,ICAO,Airport name,Country,City\nLOS,DNMM,Murtala Muhammed,Nigeria,Lagos\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LOS")
}

func TestSampleBookingRequest(t *testing.T) {
	req := SampleBookingRequest()

	assert.Equal(t, "Jane Doe", req.FullName)
	assert.Equal(t, "LOS", req.From)
	assert.Equal(t, "LHR", req.To)
	assert.NotEmpty(t, req.ReturnDate)
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("hello")
	assert.Equal(t, "hello", *s)
}
