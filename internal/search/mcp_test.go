package search

import (
	"context"
	"errors"
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

func TestSearchAllRequiresQuery(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.SearchAll(context.Background(), SearchAllArgs{Query: "  "})
	var valErr *apierrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("blank query should not reach the backend, got %d calls", calls.Load())
	}
}

func TestSearchAccountsMapsMatches(t *testing.T) {
	var gotPath string
	var gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"type":"accounts","id":"3","attributes":{"name":"Main Bank","type":"asset","currency_code":"EUR","active":true}},
			{"type":"accounts","id":"9","attributes":{"name":"Old Bank","type":"asset","active":false}}
		]}`))
	})

	res, err := client.SearchAccounts(context.Background(), SearchAccountsArgs{Query: "bank", Type: "asset"})
	if err != nil {
		t.Fatalf("SearchAccounts error: %v", err)
	}
	if gotPath != "/api/v1/search/accounts" {
		t.Errorf("path = %q", gotPath)
	}
	req := httptest.NewRequest("GET", "/?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("query") != "bank" || q.Get("field") != "all" || q.Get("type") != "asset" {
		t.Errorf("query = %q", gotQuery)
	}
	if res.Count != 2 || len(res.Accounts) != 2 {
		t.Fatalf("result = %+v", res)
	}
	if res.Accounts[0].ID != "3" || res.Accounts[0].Name != "Main Bank" || !res.Accounts[0].Active {
		t.Errorf("first match = %+v", res.Accounts[0])
	}
	if res.Accounts[1].CurrencyCode != "" || res.Accounts[1].Active {
		t.Errorf("second match = %+v", res.Accounts[1])
	}
}

func TestSearchAccountsEmptyGetsMessage(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	res, err := client.SearchAccounts(context.Background(), SearchAccountsArgs{Query: "nothing"})
	if err != nil {
		t.Fatalf("SearchAccounts error: %v", err)
	}
	if res.Count != 0 || res.Message == "" {
		t.Errorf("result = %+v", res)
	}
}

func TestAutocompleteDecodesBareArray(t *testing.T) {
	var gotPath string
	var gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Groceries"},{"id":"2","name":"Gifts"}]`))
	})

	res, err := client.AutocompleteCategories(context.Background(), AutocompleteArgs{Query: "g", Limit: 10})
	if err != nil {
		t.Fatalf("AutocompleteCategories error: %v", err)
	}
	if gotPath != "/api/v1/autocomplete/categories" {
		t.Errorf("path = %q", gotPath)
	}
	req := httptest.NewRequest("GET", "/?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("query") != "g" || q.Get("limit") != "10" {
		t.Errorf("query = %q", gotQuery)
	}
	if res.Count != 2 || res.Suggestions[1].Name != "Gifts" {
		t.Errorf("result = %+v", res)
	}
}

func TestAutocompleteDefaultsLimit(t *testing.T) {
	var gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	res, err := client.AutocompleteTags(context.Background(), AutocompleteArgs{Query: "tr"})
	if err != nil {
		t.Fatalf("AutocompleteTags error: %v", err)
	}
	req := httptest.NewRequest("GET", "/?"+gotQuery, nil)
	if got := req.URL.Query().Get("limit"); got != "50" {
		t.Errorf("limit = %q, want 50", got)
	}
	if res.Message == "" {
		t.Error("empty suggestions should carry a message")
	}
}
