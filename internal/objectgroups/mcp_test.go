package objectgroups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func TestListMapsRecords(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": [
			{"id": "1", "attributes": {"title": "Household", "order": 1}},
			{"id": "2", "attributes": {"title": "Vacation", "order": 2}}
		]}`))
	})

	res, err := client.List(context.Background(), ListArgs{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotPath != "/api/v1/object-groups" {
		t.Errorf("path = %q", gotPath)
	}
	if res.Count != 2 || res.ObjectGroups[0].Title != "Household" || res.ObjectGroups[1].Order != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestListEmptyGetsMessage(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	res, err := client.List(context.Background(), ListArgs{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if res.Message == "" {
		t.Error("empty listing should carry a message")
	}
}

func TestGetRequiresID(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Get(context.Background(), GetArgs{})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestUpdateRequiresTitle(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Update(context.Background(), UpdateArgs{ObjectGroupID: "1"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestUpdateSendsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody updateRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data": {"id": "7", "attributes": {"title": "Fixed costs", "order": 3}}}`))
	})

	res, err := client.Update(context.Background(), UpdateArgs{ObjectGroupID: "7", Title: "Fixed costs", Order: 3})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/v1/object-groups/7" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody.Title != "Fixed costs" || gotBody.Order != 3 {
		t.Errorf("body = %+v", gotBody)
	}
	if res.ObjectGroup.ID != "7" || res.ObjectGroup.Title != "Fixed costs" {
		t.Errorf("result = %+v", res)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := client.Delete(context.Background(), DeleteArgs{ObjectGroupID: "1"})
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if res.Deleted || res.Warning == "" {
		t.Errorf("unconfirmed delete = %+v", res)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDeleteConfirmed(t *testing.T) {
	var gotMethod, gotPath string
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.Delete(context.Background(), DeleteArgs{ObjectGroupID: "9", Confirm: true})
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !res.Deleted {
		t.Errorf("result = %+v", res)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v1/object-groups/9" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}
