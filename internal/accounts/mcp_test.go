package accounts

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

func TestListFiltersByNameSubstring(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [
			{"type": "accounts", "id": "1", "attributes": {"name": "Main Checking", "type": "asset", "current_balance": "100.5", "currency_code": "EUR", "active": true}},
			{"type": "accounts", "id": "2", "attributes": {"name": "Savings", "type": "asset", "current_balance": "900", "active": true}},
			{"type": "accounts", "id": "3", "attributes": {"name": "Old checking", "type": "asset", "current_balance": "0", "active": false}}
		]}`))
	})

	res, err := client.List(context.Background(), ListArgs{NameFilter: "checking"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("count = %d, want 2 (case-insensitive match)", res.Count)
	}
	if res.Accounts[0].ID != "1" || res.Accounts[1].ID != "3" {
		t.Errorf("matched accounts = %+v", res.Accounts)
	}
	if res.Accounts[0].Balance != "100.50" {
		t.Errorf("balance = %q, want two decimals", res.Accounts[0].Balance)
	}
}

func TestListPassesTypeToBackend(t *testing.T) {
	var gotType string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	res, err := client.List(context.Background(), ListArgs{Type: "asset"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotType != "asset" {
		t.Errorf("type query = %q", gotType)
	}
	if res.Message == "" {
		t.Error("empty list should carry sentinel message")
	}
}

func TestGetRequiresID(t *testing.T) {
	calls, client := newStub(t, nil)
	_, err := client.Get(context.Background(), GetArgs{AccountID: "  "})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	var stored createRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = json.NewDecoder(r.Body).Decode(&stored)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "10", "attributes": map[string]any{
				"name": stored.Name, "type": stored.Type, "currency_code": stored.CurrencyCode,
				"opening_balance": stored.OpeningBalance, "notes": stored.Notes, "active": true,
			}},
		})
	})

	created, err := client.Create(context.Background(), CreateArgs{
		Name:           "Emergency Fund",
		Type:           "asset",
		CurrencyCode:   "EUR",
		OpeningBalance: "1000",
		Notes:          "three months of expenses",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := client.Get(context.Background(), GetArgs{AccountID: created.Account.ID})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Account.Name != "Emergency Fund" || got.Account.OpeningBalance != "1000" || got.Account.Notes != "three months of expenses" {
		t.Errorf("round trip lost fields: %+v", got.Account)
	}
}

func TestUpdateRequiresAtLeastOneField(t *testing.T) {
	calls, client := newStub(t, nil)
	_, err := client.Update(context.Background(), UpdateArgs{AccountID: "5"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.Delete(context.Background(), DeleteArgs{AccountID: "5"})
	if err != nil {
		t.Fatalf("unconfirmed delete should not error: %v", err)
	}
	if res.Deleted || res.Warning == "" || calls.Load() != 0 {
		t.Errorf("unconfirmed delete = %+v, calls = %d", res, calls.Load())
	}

	res, err = client.Delete(context.Background(), DeleteArgs{AccountID: "5", Confirm: true})
	if err != nil {
		t.Fatalf("confirmed delete error: %v", err)
	}
	if !res.Deleted || res.ID != "5" || calls.Load() != 1 {
		t.Errorf("confirmed delete = %+v, calls = %d", res, calls.Load())
	}
}

func TestListTransactionsScopesPath(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	if _, err := client.ListTransactions(context.Background(), ListTransactionsArgs{AccountID: "7", StartDate: "2024-01-01"}); err != nil {
		t.Fatalf("ListTransactions error: %v", err)
	}
	if gotPath != "/api/v1/accounts/7/transactions" {
		t.Errorf("path = %q", gotPath)
	}
}
