package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health writes a health check response. Uptime is reported in seconds.
func Health(c echo.Context, now time.Time, uptime time.Duration) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    uptime.Seconds(),
	})
}
