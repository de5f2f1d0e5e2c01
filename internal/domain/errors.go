package domain

import "errors"

// Sentinel errors for the booking and lookup flows. Callers classify failures
// with errors.Is after wrapping with fmt.Errorf("%w: ...").
var (
	// ErrInvalidRequest indicates a request that could not be parsed or validated.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrFormatFailed indicates the booking payload could not be turned into a
	// notification message. Surfaces to the caller as an overall failure.
	ErrFormatFailed = errors.New("format failed")

	// ErrDeliveryFailed indicates an email transport failure. Logged and
	// swallowed; never affects the caller-visible result.
	ErrDeliveryFailed = errors.New("delivery failed")

	// ErrNotFound indicates a lookup miss (unknown IATA code, booking ID, ...).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing, expired, or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
)
