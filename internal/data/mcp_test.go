package data

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

func TestExportTransactionsForwardsScope(t *testing.T) {
	var gotPath, gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("date,amount,description\n2024-03-01,12.50,coffee\n"))
	})

	res, err := client.ExportTransactions(context.Background(), ExportTransactionsArgs{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Accounts:  "1, 2",
	})
	if err != nil {
		t.Fatalf("ExportTransactions error: %v", err)
	}
	if gotPath != "/api/v1/data/export/transactions" {
		t.Errorf("path = %q", gotPath)
	}
	req := httptest.NewRequest("GET", "/?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("type") != "csv" || q.Get("start") != "2024-03-01" || q.Get("end") != "2024-03-31" || q.Get("accounts") != "1,2" {
		t.Errorf("query = %q", gotQuery)
	}
	if res.Kind != "transactions" || res.CSV == "" || res.Message != "" {
		t.Errorf("result = %+v", res)
	}
}

func TestExportEmptyGetsMessage(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\n"))
	})

	res, err := client.ExportTags(context.Background(), ExportArgs{})
	if err != nil {
		t.Fatalf("ExportTags error: %v", err)
	}
	if res.Message == "" {
		t.Error("empty export should carry a message")
	}
}

func TestBulkUpdateRejectsInvalidQueryLocally(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.BulkUpdateTransactions(context.Background(), BulkUpdateArgs{Query: "{broken"})
	if !apierrors.IsMalformedJSON(err) {
		t.Fatalf("expected MalformedJSONError, got %v", err)
	}
	_, err = client.BulkUpdateTransactions(context.Background(), BulkUpdateArgs{})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestBulkUpdateForwardsQuery(t *testing.T) {
	query := `{"where": {"account_id": 1}, "update": {"account_id": 2}}`
	var gotMethod, gotPath, gotQuery string
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.BulkUpdateTransactions(context.Background(), BulkUpdateArgs{Query: query})
	if err != nil {
		t.Fatalf("BulkUpdateTransactions error: %v", err)
	}
	if gotMethod != "POST" || gotPath != "/api/v1/data/bulk/transactions" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotQuery != query {
		t.Errorf("query = %q, want %q", gotQuery, query)
	}
	if !res.Applied {
		t.Errorf("result = %+v", res)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}

func TestDestroyDataRejectsUnknownClass(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.DestroyData(context.Background(), DestroyArgs{Objects: "everything", Confirm: true})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDestroyDataNeedsConfirmation(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := client.DestroyData(context.Background(), DestroyArgs{Objects: "budgets"})
	if err != nil {
		t.Fatalf("DestroyData error: %v", err)
	}
	if res.Destroyed || res.Warning == "" {
		t.Errorf("unconfirmed destroy = %+v", res)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDestroyDataConfirmed(t *testing.T) {
	var gotMethod, gotQuery string
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.DestroyData(context.Background(), DestroyArgs{Objects: "Tags", Confirm: true})
	if err != nil {
		t.Fatalf("DestroyData error: %v", err)
	}
	if !res.Destroyed || res.Objects != "tags" {
		t.Errorf("result = %+v", res)
	}
	if gotMethod != "DELETE" || gotQuery != "objects=tags" {
		t.Errorf("request = %s ?%s", gotMethod, gotQuery)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}

func TestPurgeDataDoubleGate(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, args := range []PurgeArgs{
		{},
		{Confirm: true},
		{AcknowledgeIrreversible: true},
	} {
		res, err := client.PurgeData(context.Background(), args)
		if err != nil {
			t.Fatalf("PurgeData(%+v) error: %v", args, err)
		}
		if res.Purged || res.Warning == "" {
			t.Errorf("PurgeData(%+v) = %+v, want warning", args, res)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("backend calls = %d, want 0 before both gates", calls.Load())
	}

	res, err := client.PurgeData(context.Background(), PurgeArgs{Confirm: true, AcknowledgeIrreversible: true})
	if err != nil {
		t.Fatalf("PurgeData error: %v", err)
	}
	if !res.Purged {
		t.Errorf("result = %+v", res)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}
