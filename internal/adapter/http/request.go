// Package http provides the HTTP handler layer for the travel booking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
)

// Basic email shape check, not a full RFC 5322 validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SearchLimitMax caps the per-request suggestion limit.
const SearchLimitMax = 50

// SubmitInquiryRequest represents the contact form body.
type SubmitInquiryRequest struct {
	// Name is the sender's display name
	Name string `json:"name"`

	// Email is the sender's reply address
	Email string `json:"email"`

	// Subject is a short topic line
	Subject string `json:"subject"`

	// Message is the inquiry text
	Message string `json:"message"`
}

// LoginRequest represents the admin login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the inquiry request and returns any validation errors.
func (r *SubmitInquiryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)

	if r.Name == "" {
		errs.Add("name", "name is required")
	}

	if r.Email == "" {
		errs.Add("email", "email is required")
	} else if !emailPattern.MatchString(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if r.Subject == "" {
		errs.Add("subject", "subject is required")
	}

	if r.Message == "" {
		errs.Add("message", "message is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the login request and returns any validation errors.
func (r *LoginRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Email) == "" {
		errs.Add("email", "email is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
