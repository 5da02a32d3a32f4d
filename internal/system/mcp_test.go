package system

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
)

func newStub(t *testing.T, handler http.HandlerFunc) (*atomic.Int32, *Client) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	api := firefly.NewClient(
		firefly.WithHTTPClient(srv.Client()),
		firefly.WithConfig(&firefly.Config{BaseURL: srv.URL + "/api", Token: "t"}),
	)
	return &calls, NewClient(api)
}

func TestHealthCheckReportsFailureAsResult(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	res, err := client.HealthCheck(context.Background(), HealthArgs{})
	if err != nil {
		t.Fatalf("health check should not error: %v", err)
	}
	if res.Healthy {
		t.Error("unreachable backend should report unhealthy")
	}
	if res.Message == "" {
		t.Error("failure message missing")
	}
}

func TestHealthCheckReportsVersion(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"version": "6.1.0", "api_version": "2.0.0"}}`))
	})

	res, err := client.HealthCheck(context.Background(), HealthArgs{})
	if err != nil {
		t.Fatalf("HealthCheck error: %v", err)
	}
	if !res.Healthy || res.Version != "6.1.0" {
		t.Errorf("health = %+v", res)
	}
}

func TestListUserGroupsMapsMembers(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": [
			{"id": "1", "attributes": {"title": "Personal", "in_use": true, "members": [{"user_id": "1", "user_email": "me@example.com", "roles": ["owner"]}]}},
			{"id": "2", "attributes": {"title": "Shared household"}}
		]}`))
	})

	res, err := client.ListUserGroups(context.Background(), ListUserGroupsArgs{})
	if err != nil {
		t.Fatalf("ListUserGroups error: %v", err)
	}
	if gotPath != "/api/v1/user-groups" {
		t.Errorf("path = %q", gotPath)
	}
	if res.Count != 2 || res.UserGroups[0].Title != "Personal" || !res.UserGroups[0].InUse {
		t.Errorf("result = %+v", res)
	}
	if len(res.UserGroups[0].Members) != 1 || res.UserGroups[0].Members[0].Roles[0] != "owner" {
		t.Errorf("members = %+v", res.UserGroups[0].Members)
	}
}

func TestGetUserGroupRequiresID(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.GetUserGroup(context.Background(), GetUserGroupArgs{})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestGetUserGroup(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": {"id": "2", "attributes": {"title": "Shared household", "members": [{"user_email": "partner@example.com", "roles": ["full"]}]}}}`))
	})

	res, err := client.GetUserGroup(context.Background(), GetUserGroupArgs{UserGroupID: "2"})
	if err != nil {
		t.Fatalf("GetUserGroup error: %v", err)
	}
	if gotPath != "/api/v1/user-groups/2" {
		t.Errorf("path = %q", gotPath)
	}
	if res.UserGroup.Title != "Shared household" || len(res.UserGroup.Members) != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestRawRequestRejectsInvalidBodyLocally(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.RawRequest(context.Background(), RawRequestArgs{
		Path:   "/v1/accounts",
		Method: "POST",
		Body:   "{broken",
	})
	if !apierrors.IsMalformedJSON(err) {
		t.Fatalf("expected MalformedJSONError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestRawRequestPrettyPrintsResponse(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"data":[{"id":"1"}]}`))
	})

	res, err := client.RawRequest(context.Background(), RawRequestArgs{Path: "/v1/accounts?type=asset"})
	if err != nil {
		t.Fatalf("RawRequest error: %v", err)
	}
	if gotPath != "/api/v1/accounts?type=asset" {
		t.Errorf("path = %q, want verbatim append", gotPath)
	}
	if res.Status != http.StatusOK {
		t.Errorf("status = %d", res.Status)
	}
	if !strings.Contains(res.Body, "\n") {
		t.Errorf("body should be re-indented: %q", res.Body)
	}
}

func TestRawRequestAcceptsPatch(t *testing.T) {
	var gotMethod string
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := client.RawRequest(context.Background(), RawRequestArgs{
		Path:   "/v1/preferences/language",
		Method: "patch",
		Body:   `{"data": "de_DE"}`,
	})
	if err != nil {
		t.Fatalf("RawRequest error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", gotMethod)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}

func TestRawRequestRejectsUnknownMethod(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.RawRequest(context.Background(), RawRequestArgs{Path: "/v1/accounts", Method: "HEAD"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestSetConfigValidatesJSONValue(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.SetConfig(context.Background(), SetConfigArgs{Name: "configuration.single_user_mode", Value: "not-json"})
	if !apierrors.IsMalformedJSON(err) {
		t.Fatalf("expected MalformedJSONError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}
