package firefly

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcp-secrets.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare host", "https://firefly.example.com", "https://firefly.example.com/api"},
		{"trailing slash", "https://firefly.example.com/", "https://firefly.example.com/api"},
		{"already has api", "https://firefly.example.com/api", "https://firefly.example.com/api"},
		{"api with slash", "https://firefly.example.com/api/", "https://firefly.example.com/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBaseURL(tt.input); got != tt.want {
				t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", `{"firefly": {"base_url": "https://ff.example.com", "token": "tok"}}`, false},
		{"missing token", `{"firefly": {"base_url": "https://ff.example.com"}}`, true},
		{"missing base_url", `{"firefly": {"token": "tok"}}`, true},
		{"empty firefly section", `{"other": {}}`, true},
		{"not json", `nope`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSecrets(t, tt.content)
			cfg, err := LoadConfig(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !apierrors.IsConfig(err) {
					t.Errorf("expected ConfigError, got %T", err)
				}
				return
			}
			if cfg.BaseURL != "https://ff.example.com/api" {
				t.Errorf("BaseURL = %q", cfg.BaseURL)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if !apierrors.IsConfig(err) {
		t.Fatalf("expected ConfigError for missing file, got %v", err)
	}
}

func TestConfigLoadedAtMostOnce(t *testing.T) {
	path := writeSecrets(t, `{"firefly": {"base_url": "https://ff.example.com", "token": "tok"}}`)
	client := NewClient(WithSecretsPath(path))

	var wg sync.WaitGroup
	configs := make([]*Config, 20)
	for i := range configs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := client.config()
			if err != nil {
				t.Errorf("config() error: %v", err)
				return
			}
			configs[i] = cfg
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(configs); i++ {
		if configs[i] != configs[0] {
			t.Fatal("config() returned different instances; expected a single shared load")
		}
	}
}

func TestConfigErrorIsSticky(t *testing.T) {
	client := NewClient(WithSecretsPath(filepath.Join(t.TempDir(), "absent.json")))

	if err := client.Do(context.Background(), http.MethodGet, "/about", nil, nil, nil); !apierrors.IsConfig(err) {
		t.Fatalf("first call: expected ConfigError, got %v", err)
	}
	// A second call must fail the same way without re-reading the file.
	if err := client.Do(context.Background(), http.MethodGet, "/about", nil, nil, nil); !apierrors.IsConfig(err) {
		t.Fatalf("second call: expected ConfigError, got %v", err)
	}
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(
		WithHTTPClient(srv.Client()),
		WithConfig(&Config{BaseURL: srv.URL + "/api", Token: "test-token"}),
	)
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	if err := client.Do(context.Background(), http.MethodGet, "/accounts", nil, nil, nil); err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/api/v1/accounts" {
		t.Errorf("path = %q, want /api/v1/accounts", gotPath)
	}
}

func TestDoExtractsAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "This account name is already in use."}`))
	}))
	defer srv.Close()

	err := newTestClient(srv).Do(context.Background(), http.MethodPost, "/accounts", nil, map[string]string{"name": "x"}, nil)
	var apiErr *apierrors.APIError
	if !asAPIError(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 422 || apiErr.Message != "This account name is already in use." {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestDoFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := newTestClient(srv).Do(context.Background(), http.MethodGet, "/about", nil, nil, nil)
	var apiErr *apierrors.APIError
	if !asAPIError(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 502 || apiErr.Message != "Bad Gateway" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestDoRawAppendsPathVerbatim(t *testing.T) {
	var calls atomic.Int32
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data": {"id": "1"}}`))
	}))
	defer srv.Close()

	raw, status, err := newTestClient(srv).DoRaw(context.Background(), http.MethodGet, "/v1/accounts", nil)
	if err != nil {
		t.Fatalf("DoRaw() error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if gotPath != "/api/v1/accounts" {
		t.Errorf("path = %q, want /api/v1/accounts", gotPath)
	}
	if len(raw) == 0 {
		t.Error("expected response body")
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls = %d, want 1", calls.Load())
	}
}

func TestListDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"type": "accounts", "id": "7", "attributes": {"name": "Checking"}}], "meta": {"pagination": {"total": 1}}}`))
	}))
	defer srv.Close()

	type attrs struct {
		Name string `json:"name"`
	}
	out, err := List[attrs](context.Background(), newTestClient(srv), "/accounts", nil)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].ID != "7" || out.Data[0].Attributes.Name != "Checking" {
		t.Errorf("unexpected envelope: %+v", out)
	}
	if out.Meta.Pagination.Total != 1 {
		t.Errorf("pagination total = %d", out.Meta.Pagination.Total)
	}
}

func asAPIError(err error, target **apierrors.APIError) bool {
	return errors.As(err, target)
}
