// Package errors provides shared error types for the Firefly III MCP server.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewRequiredError creates a ValidationError for a missing required field.
func NewRequiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// ConfigError indicates the secrets file is absent or incomplete.
type ConfigError struct {
	Path    string // secrets file path
	Message string
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("configuration error (%s): %s", e.Path, e.Message)
	}
	return "configuration error: " + e.Message
}

// APIError indicates the Firefly III backend returned a non-success status.
type APIError struct {
	Status  int    // HTTP status code
	Message string // message extracted from the response body, or the status text
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

// MalformedJSONError indicates caller-supplied JSON failed to parse.
type MalformedJSONError struct {
	Field string // parameter that carried the JSON
}

func (e *MalformedJSONError) Error() string {
	return e.Field + " must be valid JSON"
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConfig reports whether err is a ConfigError.
func IsConfig(err error) bool {
	var c *ConfigError
	return errors.As(err, &c)
}

// IsAPI reports whether err is an APIError.
func IsAPI(err error) bool {
	var a *APIError
	return errors.As(err, &a)
}

// IsMalformedJSON reports whether err is a MalformedJSONError.
func IsMalformedJSON(err error) bool {
	var m *MalformedJSONError
	return errors.As(err, &m)
}
