package errors

import (
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with field",
			err:      NewValidationError("account_id", "must be numeric"),
			expected: "validation failed for account_id: must be numeric",
		},
		{
			name:     "required helper",
			err:      NewRequiredError("description"),
			expected: "validation failed for description: description is required",
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "at least one field must be supplied"},
			expected: "validation failed: at least one field must be supplied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("error message = %q, want %q", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{Status: 422, Message: "This account name is already in use."}
	want := "API error (422): This account name is already in use."
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Path: "/home/u/.config/mcp-secrets.json", Message: "missing base_url or token"}
	want := "configuration error (/home/u/.config/mcp-secrets.json): missing base_url or token"
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
}

func TestPredicates(t *testing.T) {
	valErr := NewRequiredError("query")
	cfgErr := &ConfigError{Message: "no file"}
	apiErr := &APIError{Status: 500, Message: "boom"}
	jsonErr := &MalformedJSONError{Field: "triggers_json"}

	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"validation matches", IsValidation, valErr, true},
		{"validation wrapped", IsValidation, fmt.Errorf("call failed: %w", valErr), true},
		{"validation mismatch", IsValidation, apiErr, false},
		{"config matches", IsConfig, cfgErr, true},
		{"api matches", IsAPI, apiErr, true},
		{"api wrapped", IsAPI, fmt.Errorf("list: %w", apiErr), true},
		{"malformed matches", IsMalformedJSON, jsonErr, true},
		{"malformed mismatch", IsMalformedJSON, valErr, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMalformedJSONError(t *testing.T) {
	err := &MalformedJSONError{Field: "actions_json"}
	if err.Error() != "actions_json must be valid JSON" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
