package insights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
)

func newStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := firefly.NewClient(
		firefly.WithHTTPClient(srv.Client()),
		firefly.WithConfig(&firefly.Config{BaseURL: srv.URL + "/api", Token: "t"}),
	)
	client := NewClient(api)
	client.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return client
}

func TestSpendingSummaryGroupsByCategory(t *testing.T) {
	var gotQuery string
	client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": [
			{"id": "1", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-02", "amount": "30", "description": "a", "category_name": "Food"}]}},
			{"id": "2", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-05", "amount": "60", "description": "b", "category_name": "Rent"}]}},
			{"id": "3", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-09", "amount": "10", "description": "c"}]}}
		]}`))
	})

	res, err := client.SpendingSummary(context.Background(), SummaryArgs{})
	if err != nil {
		t.Fatalf("SpendingSummary error: %v", err)
	}
	if res.StartDate != "2024-03-01" || res.EndDate != "2024-03-31" {
		t.Errorf("period = %q..%q, want current calendar month", res.StartDate, res.EndDate)
	}
	if gotQuery == "" {
		t.Error("period and type should be forwarded to the backend")
	}
	if res.Total != 100 {
		t.Fatalf("total = %v, want 100", res.Total)
	}
	if len(res.Groups) != 3 || res.Groups[0].Key != "Rent" || res.Groups[0].Percent != 60 {
		t.Errorf("groups = %+v", res.Groups)
	}
	var uncat *Group
	for i := range res.Groups {
		if res.Groups[i].Key == "(none)" {
			uncat = &res.Groups[i]
		}
	}
	if uncat == nil || uncat.Total != 10 {
		t.Errorf("uncategorized bucket missing: %+v", res.Groups)
	}
}

func TestSpendingSummaryGroupByKeys(t *testing.T) {
	payload := `{"data": [
		{"id": "1", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-02", "amount": "30", "description": "a", "category_name": "Food", "budget_name": "Monthly", "source_name": "Checking", "tags": ["food", "weekly"]}]}},
		{"id": "2", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-05", "amount": "70", "description": "b", "category_name": "Rent", "source_name": "Savings"}]}}
	]}`

	tests := []struct {
		groupBy   string
		wantKey   string
		wantFirst string
	}{
		{"category", "category", "Rent"},
		{"budget", "budget", "(none)"},
		{"tag", "tag", "(none)"},
		{"account", "account", "Savings"},
		{"", "category", "Rent"},
		{"  Budget ", "budget", "(none)"},
	}

	for _, tt := range tests {
		t.Run("group_by="+tt.groupBy, func(t *testing.T) {
			client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			})

			res, err := client.SpendingSummary(context.Background(), SummaryArgs{GroupBy: tt.groupBy})
			if err != nil {
				t.Fatalf("SpendingSummary error: %v", err)
			}
			if res.GroupedBy != tt.wantKey {
				t.Errorf("GroupedBy = %q, want %q", res.GroupedBy, tt.wantKey)
			}
			if res.Total != 100 {
				t.Errorf("total = %v, want 100", res.Total)
			}
			if len(res.Groups) != 2 {
				t.Fatalf("groups = %+v", res.Groups)
			}
			// Largest bucket first; the 70 split has no budget and no tags
			if res.Groups[0].Key != tt.wantFirst || res.Groups[0].Total != 70 {
				t.Errorf("first group = %+v, want key %q total 70", res.Groups[0], tt.wantFirst)
			}
		})
	}
}

func TestSpendingSummaryRejectsUnknownGroupBy(t *testing.T) {
	client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid group_by should not reach the backend")
	})

	_, err := client.SpendingSummary(context.Background(), SummaryArgs{GroupBy: "merchant"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestIncomeSummaryGroupsByAccount(t *testing.T) {
	client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "deposit" {
			t.Errorf("type = %q, want deposit", got)
		}
		_, _ = w.Write([]byte(`{"data": [
			{"id": "1", "attributes": {"transactions": [{"type": "deposit", "date": "2024-03-01", "amount": "2500", "description": "salary", "source_name": "Employer"}]}}
		]}`))
	})

	res, err := client.IncomeSummary(context.Background(), SummaryArgs{GroupBy: "account"})
	if err != nil {
		t.Fatalf("IncomeSummary error: %v", err)
	}
	if res.GroupedBy != "account" || len(res.Groups) != 1 || res.Groups[0].Key != "Employer" {
		t.Errorf("result = %+v", res)
	}
}

func TestSpendingSummaryEmpty(t *testing.T) {
	client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	res, err := client.SpendingSummary(context.Background(), SummaryArgs{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	if err != nil {
		t.Fatalf("SpendingSummary error: %v", err)
	}
	if res.Message == "" || res.Total != 0 {
		t.Errorf("empty summary = %+v", res)
	}
}

func TestNetFlow(t *testing.T) {
	client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("type") {
		case "deposit":
			_, _ = w.Write([]byte(`{"data": [{"id": "1", "attributes": {"transactions": [{"type": "deposit", "date": "2024-03-01", "amount": "2500", "description": "salary"}]}}]}`))
		case "withdrawal":
			_, _ = w.Write([]byte(`{"data": [{"id": "2", "attributes": {"transactions": [{"type": "withdrawal", "date": "2024-03-02", "amount": "900", "description": "rent"}]}}]}`))
		default:
			t.Errorf("unexpected type query %q", r.URL.Query().Get("type"))
		}
	})

	res, err := client.NetFlow(context.Background(), PeriodArgs{})
	if err != nil {
		t.Fatalf("NetFlow error: %v", err)
	}
	if res.Income != 2500 || res.Expenses != 900 || res.Net != 1600 {
		t.Errorf("net flow = %+v", res)
	}
}
