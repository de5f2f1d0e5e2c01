package airport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `IATA,ICAO,Airport name,Country,City
LOS,DNMM,Murtala Muhammed International Airport,Nigeria,Lagos
LHR,EGLL,Heathrow Airport,United Kingdom,London
CDG,LFPG,"Charles de Gaulle Airport, Roissy",France,Paris
JFK,KJFK,John F. Kennedy International Airport,United States,New York`

// TestParseAirportsCSV_BasicRows tests simple unquoted rows in source order.
func TestParseAirportsCSV_BasicRows(t *testing.T) {
	records := parseAirportsCSV(sampleCSV)

	require.Len(t, records, 4)
	assert.Equal(t, "LOS", records[0].IATA)
	assert.Equal(t, "DNMM", records[0].ICAO)
	assert.Equal(t, "Murtala Muhammed International Airport", records[0].Name)
	assert.Equal(t, "Lagos", records[0].City)
	assert.Equal(t, "Nigeria", records[0].Country)
}

// TestParseAirportsCSV_QuotedFieldWithComma tests that a delimiter inside a
// quoted field is not treated as a field boundary, and quotes are stripped.
func TestParseAirportsCSV_QuotedFieldWithComma(t *testing.T) {
	records := parseAirportsCSV(sampleCSV)

	require.Len(t, records, 4)
	assert.Equal(t, "Charles de Gaulle Airport, Roissy", records[2].Name)
	assert.Equal(t, "France", records[2].Country)
	assert.Equal(t, "Paris", records[2].City)
}

// TestParseAirportsCSV_BlankLinesSkipped tests that empty and whitespace-only
// lines do not produce records.
func TestParseAirportsCSV_BlankLinesSkipped(t *testing.T) {
	raw := "IATA,ICAO,Airport name,Country,City\nLOS,DNMM,Murtala Muhammed,Nigeria,Lagos\n\n   \n"

	records := parseAirportsCSV(raw)

	assert.Len(t, records, 1)
}

// TestParseAirportsCSV_ShortRowPadded tests that a row with missing trailing
// columns keeps its leading fields and leaves the rest empty.
func TestParseAirportsCSV_ShortRowPadded(t *testing.T) {
	raw := "IATA,ICAO,Airport name,Country,City\nABV,DNAA"

	records := parseAirportsCSV(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "ABV", records[0].IATA)
	assert.Equal(t, "DNAA", records[0].ICAO)
	assert.Empty(t, records[0].Name)
	assert.Empty(t, records[0].City)
}

// TestParseAirportsCSV_CRLFLineEndings tests that carriage returns are not
// carried into field values.
func TestParseAirportsCSV_CRLFLineEndings(t *testing.T) {
	raw := "IATA,ICAO,Airport name,Country,City\r\nLOS,DNMM,Murtala Muhammed,Nigeria,Lagos\r\n"

	records := parseAirportsCSV(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "Lagos", records[0].City)
}

// TestParseAirportsCSV_HeaderRemapped tests that column order follows the
// header labels, not a fixed position.
func TestParseAirportsCSV_HeaderRemapped(t *testing.T) {
	raw := "City,Country,IATA,ICAO,Airport name\nLagos,Nigeria,LOS,DNMM,Murtala Muhammed"

	records := parseAirportsCSV(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "LOS", records[0].IATA)
	assert.Equal(t, "Lagos", records[0].City)
	assert.Equal(t, "Nigeria", records[0].Country)
}

// TestParseAirportsCSV_UnknownHeaderFallsBackToPosition tests the positional
// fallback for unrecognized header labels.
func TestParseAirportsCSV_UnknownHeaderFallsBackToPosition(t *testing.T) {
	raw := "Code,Intl,Label,Nation,Town\nLOS,DNMM,Murtala Muhammed,Nigeria,Lagos"

	records := parseAirportsCSV(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "LOS", records[0].IATA)
	assert.Equal(t, "Murtala Muhammed", records[0].Name)
	assert.Equal(t, "Nigeria", records[0].Country)
	assert.Equal(t, "Lagos", records[0].City)
}

// TestParseAirportsCSV_EmptyInput tests that header-only or empty input yields
// no records and no panic.
func TestParseAirportsCSV_EmptyInput(t *testing.T) {
	assert.Empty(t, parseAirportsCSV(""))
	assert.Empty(t, parseAirportsCSV("IATA,ICAO,Airport name,Country,City"))
}

// TestSplitCSVLine_QuoteToggling tests the quote flag semantics directly:
// quotes toggle and are stripped, doubled quotes are not unescaped.
func TestSplitCSVLine_QuoteToggling(t *testing.T) {
	fields := splitCSVLine(`a,"b,c",d`)
	assert.Equal(t, []string{"a", "b,c", "d"}, fields)

	// A doubled quote toggles twice and vanishes; it is not an escape.
	fields = splitCSVLine(`a,"b""c",d`)
	assert.Equal(t, []string{"a", "bc", "d"}, fields)
}
