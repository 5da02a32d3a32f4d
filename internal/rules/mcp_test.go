package rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
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
		if handler != nil {
			handler(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(srv.Close)

	api := firefly.NewClient(
		firefly.WithHTTPClient(srv.Client()),
		firefly.WithConfig(&firefly.Config{BaseURL: srv.URL + "/api", Token: "t"}),
	)
	return &calls, NewClient(api)
}

func TestCreateRejectsMalformedClauseJSON(t *testing.T) {
	tests := []struct {
		name string
		args CreateArgs
	}{
		{"broken triggers", CreateArgs{Title: "r", GroupID: "1", TriggersJSON: "{not json", ActionsJSON: `[{"type":"set_category","value":"x"}]`}},
		{"broken actions", CreateArgs{Title: "r", GroupID: "1", TriggersJSON: `[{"type":"description_contains","value":"coffee"}]`, ActionsJSON: "[["}},
		{"object not array", CreateArgs{Title: "r", GroupID: "1", TriggersJSON: `{"type":"x"}`, ActionsJSON: `[{"type":"y"}]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, client := newStub(t, nil)
			_, err := client.Create(context.Background(), tt.args)
			if !apierrors.IsMalformedJSON(err) {
				t.Fatalf("expected MalformedJSONError, got %v", err)
			}
			if calls.Load() != 0 {
				t.Errorf("backend calls = %d, want 0", calls.Load())
			}
		})
	}
}

func TestCreateRejectsEmptyClauseList(t *testing.T) {
	calls, client := newStub(t, nil)
	_, err := client.Create(context.Background(), CreateArgs{
		Title: "r", GroupID: "1",
		TriggersJSON: `[]`,
		ActionsJSON:  `[{"type":"set_category","value":"x"}]`,
	})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestCreateSendsParsedClauses(t *testing.T) {
	var got ruleRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"data": {"id": "8", "attributes": {"title": "Coffee", "rule_group_id": "1", "active": true}}}`))
	})

	res, err := client.Create(context.Background(), CreateArgs{
		Title:        "Coffee",
		GroupID:      "1",
		TriggersJSON: `[{"type":"description_contains","value":"coffee","active":true}]`,
		ActionsJSON:  `[{"type":"set_category","value":"Coffee","active":true}]`,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(got.Triggers) != 1 || got.Triggers[0].Type != "description_contains" {
		t.Errorf("triggers = %+v", got.Triggers)
	}
	if len(got.Actions) != 1 || got.Actions[0].Value != "Coffee" {
		t.Errorf("actions = %+v", got.Actions)
	}
	if got.Trigger != "store-journal" {
		t.Errorf("fire moment = %q, want default store-journal", got.Trigger)
	}
	if res.Rule.ID != "8" {
		t.Errorf("result = %+v", res.Rule)
	}
}

func TestUpdateAllowsOmittedClauses(t *testing.T) {
	var got ruleRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"data": {"id": "8", "attributes": {"title": "Renamed", "active": true}}}`))
	})

	if _, err := client.Update(context.Background(), UpdateArgs{RuleID: "8", Title: "Renamed"}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Triggers != nil || got.Actions != nil {
		t.Errorf("omitted clause lists should not be sent: %+v", got)
	}
}

func TestFireGroupForwardsScope(t *testing.T) {
	var gotURL string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.FireGroup(context.Background(), FireGroupArgs{
		GroupID:   "2",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Accounts:  "1, 3",
	})
	if err != nil {
		t.Fatalf("FireGroup error: %v", err)
	}
	if !res.Fired {
		t.Error("expected fired result")
	}
	want := "/api/v1/rule-groups/2/trigger"
	if len(gotURL) < len(want) || gotURL[:len(want)] != want {
		t.Errorf("url = %q", gotURL)
	}
	parsed, err := url.Parse(gotURL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := parsed.Query()
	if q.Get("start") != "2024-01-01" || q.Get("end") != "2024-01-31" {
		t.Errorf("date scope not forwarded: %q", gotURL)
	}
	if ids := q["accounts[]"]; len(ids) != 2 || ids[0] != "1" || ids[1] != "3" {
		t.Errorf("account scope = %v", ids)
	}
}

func TestDeleteGroupRequiresConfirmation(t *testing.T) {
	calls, client := newStub(t, nil)
	res, err := client.DeleteGroup(context.Background(), DeleteGroupArgs{GroupID: "2"})
	if err != nil {
		t.Fatalf("unconfirmed delete should not error: %v", err)
	}
	if res.Deleted || res.Warning == "" || calls.Load() != 0 {
		t.Errorf("unconfirmed delete = %+v, calls = %d", res, calls.Load())
	}
}
