package charts

import (
	"context"
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

func TestAccountOverviewRequiresPeriod(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.AccountOverview(context.Background(), OverviewArgs{EndDate: "2024-03-31"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	_, err = client.AccountOverview(context.Background(), OverviewArgs{StartDate: "2024-03-01"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestAccountOverviewDecodesSeries(t *testing.T) {
	var gotPath, gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[
			{"label": "Checking", "currency_code": "EUR", "type": "line", "entries": {"2024-03-01": 100.5, "2024-03-02": 90}},
			{"label": "Savings", "currency_code": "EUR", "type": "line", "entries": {"2024-03-01": 2000}}
		]`))
	})

	res, err := client.AccountOverview(context.Background(), OverviewArgs{StartDate: "2024-03-01", EndDate: "2024-03-31"})
	if err != nil {
		t.Fatalf("AccountOverview error: %v", err)
	}
	if gotPath != "/api/v1/chart/account/overview" {
		t.Errorf("path = %q", gotPath)
	}
	q := httptest.NewRequest("GET", "/?"+gotQuery, nil).URL.Query()
	if q.Get("start") != "2024-03-01" || q.Get("end") != "2024-03-31" {
		t.Errorf("query = %q", gotQuery)
	}
	if res.Count != 2 || res.Series[0].Label != "Checking" {
		t.Fatalf("result = %+v", res)
	}
	if res.Series[0].Entries["2024-03-01"] != 100.5 {
		t.Errorf("entries = %+v", res.Series[0].Entries)
	}
}

func TestBalanceForwardsAccounts(t *testing.T) {
	var gotPath, gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"label": "Checking", "entries": {"2024-03-01": 100}}]`))
	})

	res, err := client.Balance(context.Background(), BalanceArgs{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Accounts:  "1, 2",
	})
	if err != nil {
		t.Fatalf("Balance error: %v", err)
	}
	if gotPath != "/api/v1/chart/balance" {
		t.Errorf("path = %q", gotPath)
	}
	q := httptest.NewRequest("GET", "/?"+gotQuery, nil).URL.Query()
	if ids := q["accounts[]"]; len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("accounts = %v", ids)
	}
	if res.Count != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestBudgetOverviewEmptyGetsMessage(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	res, err := client.BudgetOverview(context.Background(), OverviewArgs{StartDate: "2024-03-01", EndDate: "2024-03-31"})
	if err != nil {
		t.Fatalf("BudgetOverview error: %v", err)
	}
	if res.Message == "" || res.Count != 0 {
		t.Errorf("empty chart = %+v", res)
	}
}

func TestCategoryOverviewPath(t *testing.T) {
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"label": "Groceries", "entries": {"2024-03-01": 55}}]`))
	})

	if _, err := client.CategoryOverview(context.Background(), OverviewArgs{StartDate: "2024-03-01", EndDate: "2024-03-31"}); err != nil {
		t.Fatalf("CategoryOverview error: %v", err)
	}
	if gotPath != "/api/v1/chart/category/overview" {
		t.Errorf("path = %q", gotPath)
	}
}
