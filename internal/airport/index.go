package airport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
)

// DefaultSearchLimit is the suggestion count served when the caller does not
// specify one.
const DefaultSearchLimit = 10

// fetchTimeout bounds the dataset download when the source is a URL.
const fetchTimeout = 10 * time.Second

// Index is an in-memory ordered sequence of airport records, built exactly once
// per load and immutable thereafter. A failed load yields an empty index: every
// query returns no results and nothing errors.
type Index struct {
	records []domain.AirportRecord
}

// NewIndex builds an index over the given records, preserving their order.
func NewIndex(records []domain.AirportRecord) *Index {
	return &Index{records: records}
}

// Load reads and parses the dataset from a local file path or an http(s) URL.
func Load(ctx context.Context, source string) (*Index, error) {
	raw, err := readSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load airports from %s: %w", source, err)
	}
	return NewIndex(parseAirportsCSV(raw)), nil
}

// MustLoad loads the dataset, degrading to an empty index on any failure.
// The failure is logged at warn level; search then returns no suggestions,
// which is the contract's soft-fail behavior.
func MustLoad(ctx context.Context, source string, log zerolog.Logger) *Index {
	idx, err := Load(ctx, source)
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("Airport dataset unavailable, search disabled")
		return NewIndex(nil)
	}
	log.Info().Int("airports", idx.Len()).Str("source", source).Msg("Airport dataset loaded")
	return idx
}

func readSource(ctx context.Context, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return "", err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status %s", resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Search returns up to limit records matching the query, in source order.
// An empty query returns the first limit records (browse mode). Otherwise a
// record matches when its IATA, name, city, or country contains the query as a
// case-insensitive substring. There is no ranking beyond source order.
func (idx *Index) Search(query string, limit int) []domain.AirportRecord {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results := make([]domain.AirportRecord, 0, limit)
	if query == "" {
		for _, rec := range idx.records {
			if len(results) == limit {
				break
			}
			results = append(results, rec)
		}
		return results
	}

	q := strings.ToLower(query)
	for _, rec := range idx.records {
		if len(results) == limit {
			break
		}
		if matches(rec, q) {
			results = append(results, rec)
		}
	}
	return results
}

func matches(rec domain.AirportRecord, q string) bool {
	return strings.Contains(strings.ToLower(rec.IATA), q) ||
		strings.Contains(strings.ToLower(rec.Name), q) ||
		strings.Contains(strings.ToLower(rec.City), q) ||
		strings.Contains(strings.ToLower(rec.Country), q)
}

// Resolve returns the first record with the given IATA code. The comparison is
// case-insensitive so externally set lowercase codes still resolve.
func (idx *Index) Resolve(iata string) (domain.AirportRecord, bool) {
	for _, rec := range idx.records {
		if strings.EqualFold(rec.IATA, iata) {
			return rec, true
		}
	}
	return domain.AirportRecord{}, false
}

// DisplayString renders the canonical display text for a record.
func DisplayString(rec domain.AirportRecord) string {
	return fmt.Sprintf("%s - %s, %s, %s", rec.IATA, rec.Name, rec.City, rec.Country)
}

// ResolveDisplay renders the canonical display text for an IATA code already
// present in the index, or the empty string when the code is unknown. This is
// the reverse lookup used when a bound value is set externally (form reset).
func (idx *Index) ResolveDisplay(iata string) string {
	rec, ok := idx.Resolve(iata)
	if !ok {
		return ""
	}
	return DisplayString(rec)
}
