package system

import (
	"encoding/json"

	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// HealthArgs contains parameters for the health check.
type HealthArgs struct{}

// HealthResult reports whether the backend answered.
type HealthResult struct {
	Healthy bool   `json:"healthy"`
	Version string `json:"version,omitempty"`
	Message string `json:"message"`
}

// InfoArgs contains parameters for the system info tool.
type InfoArgs struct{}

// InfoResult is the backend's version and platform information.
type InfoResult struct {
	Version    string `json:"version"`
	APIVersion string `json:"api_version,omitempty"`
	PHPVersion string `json:"php_version,omitempty"`
	OS         string `json:"os,omitempty"`
	Driver     string `json:"driver,omitempty"`
}

// CronArgs contains parameters for triggering the cron endpoint.
type CronArgs struct {
	Token string `json:"token" jsonschema:"required" jsonschema_description:"CLI token from the Firefly III profile page"`
}

// CronResult is the raw cron report.
type CronResult struct {
	Report json.RawMessage `json:"report"`
}

// ListConfigArgs contains parameters for listing configuration entries.
type ListConfigArgs struct{}

// ListConfigResult is the result of listing configuration entries.
type ListConfigResult struct {
	Entries []ConfigItem `json:"entries"`
	Count   int          `json:"count"`
}

// GetConfigArgs contains parameters for fetching one configuration entry.
type GetConfigArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Configuration key, e.g. configuration.is_demo_site"`
}

// GetConfigResult is the result of fetching one configuration entry.
type GetConfigResult struct {
	Entry ConfigItem `json:"entry"`
}

// SetConfigArgs contains parameters for setting a configuration entry. The
// value arrives as a JSON literal so booleans and lists survive intact.
type SetConfigArgs struct {
	Name  string `json:"name" jsonschema:"required" jsonschema_description:"Configuration key"`
	Value string `json:"value" jsonschema:"required" jsonschema_description:"New value as a JSON literal, e.g. true or \"en_US\""`
}

// SetConfigResult is the result of setting a configuration entry.
type SetConfigResult struct {
	Entry ConfigItem `json:"entry"`
}

// ListPreferencesArgs contains parameters for listing preferences.
type ListPreferencesArgs struct{}

// ListPreferencesResult is the result of listing preferences.
type ListPreferencesResult struct {
	Preferences []Preference `json:"preferences"`
	Count       int          `json:"count"`
	Message     string       `json:"message,omitempty"`
}

// GetPreferenceArgs contains parameters for fetching one preference.
type GetPreferenceArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Preference name, e.g. currencyPreference"`
}

// GetPreferenceResult is the result of fetching one preference.
type GetPreferenceResult struct {
	Preference Preference `json:"preference"`
}

// CreatePreferenceArgs contains parameters for creating a preference.
type CreatePreferenceArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Preference name"`
	Data string `json:"data" jsonschema:"required" jsonschema_description:"Preference value as a JSON literal"`
}

// CreatePreferenceResult is the result of creating a preference.
type CreatePreferenceResult struct {
	Preference Preference `json:"preference"`
}

// UpdatePreferenceArgs contains parameters for updating a preference.
type UpdatePreferenceArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Preference name"`
	Data string `json:"data" jsonschema:"required" jsonschema_description:"New value as a JSON literal"`
}

// UpdatePreferenceResult is the result of updating a preference.
type UpdatePreferenceResult struct {
	Preference Preference `json:"preference"`
}

// ListUsersArgs contains parameters for listing users.
type ListUsersArgs struct{}

// ListUsersResult is the result of listing users.
type ListUsersResult struct {
	Users   []User `json:"users"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// GetUserArgs contains parameters for fetching one user.
type GetUserArgs struct {
	UserID string `json:"user_id" jsonschema:"required" jsonschema_description:"Numeric user ID"`
}

// GetUserResult is the result of fetching one user.
type GetUserResult struct {
	User User `json:"user"`
}

// DeleteUserArgs contains parameters for deleting a user.
type DeleteUserArgs struct {
	UserID  string `json:"user_id" jsonschema:"required" jsonschema_description:"Numeric user ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListUserGroupsArgs contains parameters for listing user groups.
type ListUserGroupsArgs struct{}

// ListUserGroupsResult is the result of listing user groups.
type ListUserGroupsResult struct {
	UserGroups []UserGroup `json:"user_groups"`
	Count      int         `json:"count"`
	Message    string      `json:"message,omitempty"`
}

// GetUserGroupArgs contains parameters for fetching one user group.
type GetUserGroupArgs struct {
	UserGroupID string `json:"user_group_id" jsonschema:"required" jsonschema_description:"Numeric user group ID"`
}

// GetUserGroupResult is the result of fetching one user group.
type GetUserGroupResult struct {
	UserGroup UserGroup `json:"user_group"`
}

// RawRequestArgs contains parameters for the raw API escape hatch. The path
// is appended verbatim to the configured base address.
type RawRequestArgs struct {
	Path   string `json:"path" jsonschema:"required" jsonschema_description:"Path appended to the API base, e.g. /v1/accounts?type=asset"`
	Method string `json:"method,omitempty" jsonschema_description:"HTTP method (default GET)"`
	Body   string `json:"body,omitempty" jsonschema_description:"JSON request body for POST and PUT"`
}

// RawRequestResult is the pretty-printed backend response.
type RawRequestResult struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}
