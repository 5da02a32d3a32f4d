package budgets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

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
	client := NewClient(api)
	client.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return &calls, client
}

func TestGetResolvesNumericIDDirectly(t *testing.T) {
	var gotPath string
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": {"id": "4", "attributes": {"name": "Groceries", "active": true}}}`))
	})

	res, err := client.Get(context.Background(), GetArgs{Budget: "4"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotPath != "/api/v1/budgets/4" {
		t.Errorf("path = %q, want direct fetch", gotPath)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
	if res.Budget.Name != "Groceries" {
		t.Errorf("budget = %+v", res.Budget)
	}
}

func TestGetResolvesNameViaList(t *testing.T) {
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/budgets" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data": [
			{"id": "1", "attributes": {"name": "Rent", "active": true}},
			{"id": "2", "attributes": {"name": "Groceries", "active": true}}
		]}`))
	})

	res, err := client.Get(context.Background(), GetArgs{Budget: "groceries"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if res.Budget.ID != "2" {
		t.Errorf("resolved ID = %q, want case-insensitive name match", res.Budget.ID)
	}

	_, err = client.Get(context.Background(), GetArgs{Budget: "Vacation"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("unknown name should be a ValidationError, got %v", err)
	}
}

func TestCreateLimitDefaultsToCurrentMonth(t *testing.T) {
	var got limitRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"data": {"id": "9", "attributes": {"start": "2024-03-01", "end": "2024-03-31", "amount": "300"}}}`))
	})

	if _, err := client.CreateLimit(context.Background(), CreateLimitArgs{BudgetID: "4", Amount: "300"}); err != nil {
		t.Fatalf("CreateLimit error: %v", err)
	}
	if got.Start != "2024-03-01" || got.End != "2024-03-31" {
		t.Errorf("period = %q..%q, want current calendar month", got.Start, got.End)
	}
}

func TestCreateLimitRequiresAmount(t *testing.T) {
	calls, client := newStub(t, nil)
	_, err := client.CreateLimit(context.Background(), CreateLimitArgs{BudgetID: "4"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDeleteAvailableRequiresConfirmation(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.DeleteAvailable(context.Background(), DeleteAvailableArgs{AvailableBudgetID: "3"})
	if err != nil {
		t.Fatalf("unconfirmed delete should not error: %v", err)
	}
	if res.Deleted || res.Warning == "" || calls.Load() != 0 {
		t.Errorf("unconfirmed delete = %+v, calls = %d", res, calls.Load())
	}

	res, err = client.DeleteAvailable(context.Background(), DeleteAvailableArgs{AvailableBudgetID: "3", Confirm: true})
	if err != nil {
		t.Fatalf("confirmed delete error: %v", err)
	}
	if !res.Deleted || calls.Load() != 1 {
		t.Errorf("confirmed delete = %+v, calls = %d", res, calls.Load())
	}
}

func TestSpendingDefaultsPeriod(t *testing.T) {
	var gotQuery string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/budgets/4" {
			gotQuery = r.URL.RawQuery
		}
		_, _ = w.Write([]byte(`{"data": {"id": "4", "attributes": {"name": "Groceries", "active": true, "spent": [{"sum": "-123.456", "currency_code": "EUR"}]}}}`))
	})

	res, err := client.Spending(context.Background(), SpendingArgs{Budget: "4"})
	if err != nil {
		t.Fatalf("Spending error: %v", err)
	}
	if res.StartDate != "2024-03-01" || res.EndDate != "2024-03-31" {
		t.Errorf("period = %q..%q", res.StartDate, res.EndDate)
	}
	if gotQuery == "" {
		t.Error("period should be forwarded to the backend")
	}
	if len(res.Spent) != 1 || res.Spent[0].Sum != "-123.46" {
		t.Errorf("spent = %+v", res.Spent)
	}
}
