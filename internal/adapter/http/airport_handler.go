package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/response"
	"github.com/snsp-travel/travel-booking-service/internal/airport"
)

// AirportHandler serves airport autocomplete lookups.
type AirportHandler struct {
	index        *airport.Index
	defaultLimit int
}

// NewAirportHandler creates a new AirportHandler over the given index.
func NewAirportHandler(index *airport.Index, defaultLimit int) *AirportHandler {
	if defaultLimit < 1 {
		defaultLimit = airport.DefaultSearchLimit
	}
	return &AirportHandler{
		index:        index,
		defaultLimit: defaultLimit,
	}
}

// SearchAirports handles GET /api/airports/search
//
// @Summary Search airports
// @Description Case-insensitive substring search over code, name, city, and country. An empty query returns the first entries for browsing.
// @Tags airports
// @Produce json
// @Param q query string false "Search query"
// @Param limit query int false "Maximum results (1-50, default 10)"
// @Success 200 {object} AirportSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/airports/search [get]
func (h *AirportHandler) SearchAirports(c echo.Context) error {
	query := c.QueryParam("q")

	limit := h.defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > SearchLimitMax {
			errs := &ValidationErrors{}
			errs.Add("limit", "limit must be a number between 1 and 50")
			return response.ValidationError(c, errs.ToMap())
		}
		limit = n
	}

	results := h.index.Search(query, limit)
	return response.OK(c, ToAirportSearchResponse(results))
}

// ResolveAirport handles GET /api/airports/:iata
//
// @Summary Resolve an airport by IATA code
// @Tags airports
// @Produce json
// @Param iata path string true "IATA code"
// @Success 200 {object} AirportDTO
// @Failure 404 {object} response.ErrorDetail "Unknown code"
// @Router /api/airports/{iata} [get]
func (h *AirportHandler) ResolveAirport(c echo.Context) error {
	rec, ok := h.index.Resolve(c.Param("iata"))
	if !ok {
		return response.NotFound(c)
	}
	return response.OK(c, ToAirportDTO(rec))
}
