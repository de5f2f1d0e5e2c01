// Package domain contains the core business entities for the travel booking system.
// These entities are transport-agnostic and form the foundation upon which all other
// components are built.
package domain

// AirportRecord is one row of the airport reference dataset.
type AirportRecord struct {
	// IATA is the 3-letter airport code (e.g., "LOS"), uppercase in the dataset.
	// Duplicates are not enforced; lookups resolve to the first match.
	IATA string `json:"iata"`

	// ICAO is the 4-letter airport code, informational only.
	ICAO string `json:"icao"`

	// Name is the free-text airport name.
	Name string `json:"name"`

	// City is the airport's city.
	City string `json:"city"`

	// Country is the airport's country.
	Country string `json:"country"`
}
