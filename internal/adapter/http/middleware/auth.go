package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/snsp-travel/travel-booking-service/internal/adapter/http/response"
)

// Authenticator validates a bearer session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) error
}

// BearerToken extracts the bearer token from the Authorization header.
// It returns an empty string when the header is missing or malformed.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}

// RequireSession rejects requests that do not carry a live admin session.
func RequireSession(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if err := authn.Authenticate(c.Request().Context(), token); err != nil {
				return response.Unauthorized(c)
			}
			return next(c)
		}
	}
}
