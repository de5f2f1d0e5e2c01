// Package airport implements the airport lookup index: it loads a tabular
// airport reference dataset once and answers case-insensitive multi-field
// substring queries for a type-ahead UI.
package airport

import (
	"strings"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// Column headers recognized in the dataset, matched case-insensitively.
// When a header is missing the parser falls back to this positional order.
const (
	colIATA    = "iata"
	colICAO    = "icao"
	colName    = "airport name"
	colCountry = "country"
	colCity    = "city"
)

var positionalColumns = []string{colIATA, colICAO, colName, colCountry, colCity}

// splitCSVLine splits one line on commas, honoring quoted fields. A quote
// character toggles an "inside quotes" flag and is stripped from the output;
// doubled quotes are not unescaped. This matches the dataset's producer, which
// never emits escaped quotes, and keeps rows with embedded commas intact.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// parseAirportsCSV parses the raw dataset text into records in source order.
// The first line is a header used to map columns; blank lines are skipped and
// short rows are padded with empty fields rather than dropped.
func parseAirportsCSV(raw string) []domain.AirportRecord {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return nil
	}

	columns := headerColumns(splitCSVLine(strings.TrimRight(lines[0], "\r")))

	var records []domain.AirportRecord
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitCSVLine(line)
		var rec domain.AirportRecord
		for i, col := range columns {
			var value string
			if i < len(fields) {
				value = fields[i]
			}
			switch col {
			case colIATA:
				rec.IATA = value
			case colICAO:
				rec.ICAO = value
			case colName:
				rec.Name = value
			case colCity:
				rec.City = value
			case colCountry:
				rec.Country = value
			}
		}
		records = append(records, rec)
	}
	return records
}

// headerColumns normalizes the header row into known column names. Unknown
// headers map to their positional default so the four semantic fields survive
// label drift in the source file.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch name {
		case colIATA, colICAO, colName, colCity, colCountry:
			columns[i] = name
		default:
			if i < len(positionalColumns) {
				columns[i] = positionalColumns[i]
			}
		}
	}
	return columns
}
