// Package system exposes the Firefly III administrative endpoints (about,
// cron, configuration, preferences, users) plus the raw API escape hatch as
// MCP tool methods.
package system

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides system tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a system client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// HealthCheck verifies the backend is reachable and authenticated.
func (c *Client) HealthCheck(ctx context.Context, _ HealthArgs) (HealthResult, error) {
	var about aboutEnvelope
	if err := c.api.Do(ctx, "GET", "/about", nil, nil, &about); err != nil {
		return HealthResult{Healthy: false, Message: err.Error()}, nil
	}
	return HealthResult{Healthy: true, Version: about.Data.Version, Message: "Firefly III is reachable"}, nil
}

// SystemInfo fetches the backend's version and platform information.
func (c *Client) SystemInfo(ctx context.Context, _ InfoArgs) (InfoResult, error) {
	var about aboutEnvelope
	if err := c.api.Do(ctx, "GET", "/about", nil, nil, &about); err != nil {
		return InfoResult{}, err
	}
	return InfoResult{
		Version:    about.Data.Version,
		APIVersion: about.Data.APIVersion,
		PHPVersion: about.Data.PHPVersion,
		OS:         about.Data.OS,
		Driver:     about.Data.Driver,
	}, nil
}

// Cron triggers the backend's scheduled jobs and returns the report.
func (c *Client) Cron(ctx context.Context, args CronArgs) (CronResult, error) {
	if coerce.Blank(args.Token) {
		return CronResult{}, apierrors.NewRequiredError("token")
	}
	var report json.RawMessage
	if err := c.api.Do(ctx, "GET", "/cron/"+url.PathEscape(args.Token), nil, nil, &report); err != nil {
		return CronResult{}, err
	}
	return CronResult{Report: report}, nil
}

// ListConfig lists all configuration entries.
func (c *Client) ListConfig(ctx context.Context, _ ListConfigArgs) (ListConfigResult, error) {
	var envelope configListEnvelope
	if err := c.api.Do(ctx, "GET", "/configuration", nil, nil, &envelope); err != nil {
		return ListConfigResult{}, err
	}
	return ListConfigResult{Entries: envelope.Data, Count: len(envelope.Data)}, nil
}

// GetConfig fetches one configuration entry by key.
func (c *Client) GetConfig(ctx context.Context, args GetConfigArgs) (GetConfigResult, error) {
	if coerce.Blank(args.Name) {
		return GetConfigResult{}, apierrors.NewRequiredError("name")
	}
	var envelope configEnvelope
	if err := c.api.Do(ctx, "GET", "/configuration/"+url.PathEscape(args.Name), nil, nil, &envelope); err != nil {
		return GetConfigResult{}, err
	}
	return GetConfigResult{Entry: envelope.Data}, nil
}

// SetConfig changes an editable configuration entry. The supplied value
// must be a JSON literal and is validated before any backend call.
func (c *Client) SetConfig(ctx context.Context, args SetConfigArgs) (SetConfigResult, error) {
	if coerce.Blank(args.Name) {
		return SetConfigResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Value) {
		return SetConfigResult{}, apierrors.NewRequiredError("value")
	}
	if !json.Valid([]byte(args.Value)) {
		return SetConfigResult{}, &apierrors.MalformedJSONError{Field: "value"}
	}

	var envelope configEnvelope
	err := c.api.Do(ctx, "PUT", "/configuration/"+url.PathEscape(args.Name), nil,
		setConfigRequest{Value: json.RawMessage(args.Value)}, &envelope)
	if err != nil {
		return SetConfigResult{}, err
	}
	return SetConfigResult{Entry: envelope.Data}, nil
}

// ListPreferences lists the current user's preferences.
func (c *Client) ListPreferences(ctx context.Context, _ ListPreferencesArgs) (ListPreferencesResult, error) {
	res, err := firefly.List[PreferenceAttributes](ctx, c.api, "/preferences", nil)
	if err != nil {
		return ListPreferencesResult{}, err
	}
	prefs := make([]Preference, 0, len(res.Data))
	for _, obj := range res.Data {
		prefs = append(prefs, Preference{ID: obj.ID, Name: obj.Attributes.Name, Data: obj.Attributes.Data})
	}
	out := ListPreferencesResult{Preferences: prefs, Count: len(prefs)}
	if len(prefs) == 0 {
		out.Message = results.NoneFound("preferences")
	}
	return out, nil
}

// GetPreference fetches one preference by name.
func (c *Client) GetPreference(ctx context.Context, args GetPreferenceArgs) (GetPreferenceResult, error) {
	if coerce.Blank(args.Name) {
		return GetPreferenceResult{}, apierrors.NewRequiredError("name")
	}
	res, err := firefly.Get[PreferenceAttributes](ctx, c.api, "/preferences/"+url.PathEscape(args.Name))
	if err != nil {
		return GetPreferenceResult{}, err
	}
	return GetPreferenceResult{Preference: Preference{ID: res.Data.ID, Name: res.Data.Attributes.Name, Data: res.Data.Attributes.Data}}, nil
}

// CreatePreference stores a new preference. The data must be a JSON
// literal.
func (c *Client) CreatePreference(ctx context.Context, args CreatePreferenceArgs) (CreatePreferenceResult, error) {
	if coerce.Blank(args.Name) {
		return CreatePreferenceResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Data) {
		return CreatePreferenceResult{}, apierrors.NewRequiredError("data")
	}
	if !json.Valid([]byte(args.Data)) {
		return CreatePreferenceResult{}, &apierrors.MalformedJSONError{Field: "data"}
	}
	res, err := firefly.Post[PreferenceAttributes](ctx, c.api, "/preferences", preferenceRequest{
		Name: args.Name,
		Data: json.RawMessage(args.Data),
	})
	if err != nil {
		return CreatePreferenceResult{}, err
	}
	return CreatePreferenceResult{Preference: Preference{ID: res.Data.ID, Name: res.Data.Attributes.Name, Data: res.Data.Attributes.Data}}, nil
}

// UpdatePreference changes an existing preference. The data must be a JSON
// literal.
func (c *Client) UpdatePreference(ctx context.Context, args UpdatePreferenceArgs) (UpdatePreferenceResult, error) {
	if coerce.Blank(args.Name) {
		return UpdatePreferenceResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Data) {
		return UpdatePreferenceResult{}, apierrors.NewRequiredError("data")
	}
	if !json.Valid([]byte(args.Data)) {
		return UpdatePreferenceResult{}, &apierrors.MalformedJSONError{Field: "data"}
	}
	res, err := firefly.Put[PreferenceAttributes](ctx, c.api, "/preferences/"+url.PathEscape(args.Name), preferenceRequest{
		Data: json.RawMessage(args.Data),
	})
	if err != nil {
		return UpdatePreferenceResult{}, err
	}
	return UpdatePreferenceResult{Preference: Preference{ID: res.Data.ID, Name: res.Data.Attributes.Name, Data: res.Data.Attributes.Data}}, nil
}

// ListUsers lists the administration's users.
func (c *Client) ListUsers(ctx context.Context, _ ListUsersArgs) (ListUsersResult, error) {
	res, err := firefly.List[UserAttributes](ctx, c.api, "/users", nil)
	if err != nil {
		return ListUsersResult{}, err
	}
	users := make([]User, 0, len(res.Data))
	for _, obj := range res.Data {
		users = append(users, User{ID: obj.ID, Email: obj.Attributes.Email, Blocked: obj.Attributes.Blocked, Role: obj.Attributes.Role})
	}
	out := ListUsersResult{Users: users, Count: len(users)}
	if len(users) == 0 {
		out.Message = results.NoneFound("users")
	}
	return out, nil
}

// GetUser fetches one user by ID.
func (c *Client) GetUser(ctx context.Context, args GetUserArgs) (GetUserResult, error) {
	if coerce.Blank(args.UserID) {
		return GetUserResult{}, apierrors.NewRequiredError("user_id")
	}
	res, err := firefly.Get[UserAttributes](ctx, c.api, "/users/"+url.PathEscape(args.UserID))
	if err != nil {
		return GetUserResult{}, err
	}
	return GetUserResult{User: User{ID: res.Data.ID, Email: res.Data.Attributes.Email, Blocked: res.Data.Attributes.Blocked, Role: res.Data.Attributes.Role}}, nil
}

// DeleteUser removes a user and all their data.
func (c *Client) DeleteUser(ctx context.Context, args DeleteUserArgs) (DeleteResult, error) {
	if coerce.Blank(args.UserID) {
		return DeleteResult{}, apierrors.NewRequiredError("user_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("user and all their data"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/users/"+url.PathEscape(args.UserID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.UserID), nil
}

// ListUserGroups lists the financial administrations the current user
// belongs to.
func (c *Client) ListUserGroups(ctx context.Context, _ ListUserGroupsArgs) (ListUserGroupsResult, error) {
	res, err := firefly.List[UserGroupAttributes](ctx, c.api, "/user-groups", nil)
	if err != nil {
		return ListUserGroupsResult{}, err
	}
	groups := make([]UserGroup, 0, len(res.Data))
	for _, obj := range res.Data {
		groups = append(groups, userGroupOf(obj.ID, obj.Attributes))
	}
	out := ListUserGroupsResult{UserGroups: groups, Count: len(groups)}
	if len(groups) == 0 {
		out.Message = results.NoneFound("user groups")
	}
	return out, nil
}

// GetUserGroup fetches one financial administration by ID, including its
// members.
func (c *Client) GetUserGroup(ctx context.Context, args GetUserGroupArgs) (GetUserGroupResult, error) {
	if coerce.Blank(args.UserGroupID) {
		return GetUserGroupResult{}, apierrors.NewRequiredError("user_group_id")
	}
	res, err := firefly.Get[UserGroupAttributes](ctx, c.api, "/user-groups/"+url.PathEscape(args.UserGroupID))
	if err != nil {
		return GetUserGroupResult{}, err
	}
	return GetUserGroupResult{UserGroup: userGroupOf(res.Data.ID, res.Data.Attributes)}, nil
}

func userGroupOf(id string, a UserGroupAttributes) UserGroup {
	return UserGroup{ID: id, Title: a.Title, InUse: a.InUse, Members: a.Members}
}

// RawRequest issues an arbitrary API call. The body, when supplied, must be
// a JSON literal and is validated before any network traffic.
func (c *Client) RawRequest(ctx context.Context, args RawRequestArgs) (RawRequestResult, error) {
	if coerce.Blank(args.Path) {
		return RawRequestResult{}, apierrors.NewRequiredError("path")
	}
	method := strings.ToUpper(strings.TrimSpace(args.Method))
	if method == "" {
		method = http.MethodGet
	}
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return RawRequestResult{}, apierrors.NewValidationError("method", "must be GET, POST, PUT, PATCH, or DELETE")
	}

	var body []byte
	if !coerce.Blank(args.Body) {
		if !json.Valid([]byte(args.Body)) {
			return RawRequestResult{}, &apierrors.MalformedJSONError{Field: "body"}
		}
		body = []byte(args.Body)
	}

	raw, status, err := c.api.DoRaw(ctx, method, args.Path, body)
	if err != nil {
		return RawRequestResult{}, err
	}
	return RawRequestResult{Status: status, Body: format.PrettyRaw(raw)}, nil
}
