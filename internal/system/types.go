package system

import "encoding/json"

// AboutAttributes mirrors the GET /about payload.
type AboutAttributes struct {
	Version    string `json:"version"`
	APIVersion string `json:"api_version,omitempty"`
	PHPVersion string `json:"php_version,omitempty"`
	OS         string `json:"os,omitempty"`
	Driver     string `json:"driver,omitempty"`
}

// aboutEnvelope is the non-JSON:API shape of /about.
type aboutEnvelope struct {
	Data AboutAttributes `json:"data"`
}

// ConfigItem is one configuration entry. Values are heterogeneous (bools,
// strings, lists), so they stay raw JSON until display.
type ConfigItem struct {
	Title    string          `json:"title"`
	Value    json.RawMessage `json:"value"`
	Editable bool            `json:"editable"`
}

// configEnvelope wraps a single configuration entry.
type configEnvelope struct {
	Data ConfigItem `json:"data"`
}

// configListEnvelope wraps the configuration listing.
type configListEnvelope struct {
	Data []ConfigItem `json:"data"`
}

// setConfigRequest is the PUT /configuration/{name} payload.
type setConfigRequest struct {
	Value json.RawMessage `json:"value"`
}

// PreferenceAttributes mirrors the Firefly III preference record.
type PreferenceAttributes struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// preferenceRequest is the POST /preferences and PUT /preferences/{name}
// payload.
type preferenceRequest struct {
	Name string          `json:"name,omitempty"`
	Data json.RawMessage `json:"data"`
}

// UserAttributes mirrors the Firefly III user record.
type UserAttributes struct {
	Email       string `json:"email"`
	Blocked     bool   `json:"blocked"`
	BlockedCode string `json:"blocked_code,omitempty"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// UserGroupAttributes mirrors the Firefly III user group record. A user
// group is one financial administration; members carry their roles in it.
type UserGroupAttributes struct {
	Title     string            `json:"title"`
	InUse     bool              `json:"in_use,omitempty"`
	CreatedAt string            `json:"created_at,omitempty"`
	UpdatedAt string            `json:"updated_at,omitempty"`
	Members   []UserGroupMember `json:"members,omitempty"`
}

// UserGroupMember is one membership entry of a user group.
type UserGroupMember struct {
	UserID    string   `json:"user_id,omitempty"`
	UserEmail string   `json:"user_email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// UserGroup is the user group representation in results.
type UserGroup struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	InUse   bool              `json:"in_use,omitempty"`
	Members []UserGroupMember `json:"members,omitempty"`
}

// Preference is the preference representation in results.
type Preference struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// User is the user representation in results.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Blocked bool   `json:"blocked"`
	Role    string `json:"role,omitempty"`
}
