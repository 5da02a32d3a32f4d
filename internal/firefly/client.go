// Package firefly provides the shared HTTP client for the Firefly III API.
// All domain packages issue their requests through it: one round trip per
// call, bearer-token auth, typed error extraction. There is no caching and
// no retry — a transient failure is surfaced immediately to the caller.
package firefly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/metrics"
)

// DefaultTimeout for API requests.
const DefaultTimeout = 30 * time.Second

// Client is the shared handle to the Firefly III API. It is constructed once
// in main and injected into every domain client. The secrets file is read
// lazily on the first request, guarded by sync.Once: the result (including a
// load failure) is sticky for the process lifetime.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	secretsPath string

	loadOnce sync.Once
	cfg      *Config
	cfgErr   error
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// WithSecretsPath overrides the secrets file location.
func WithSecretsPath(path string) ClientOption {
	return func(client *Client) {
		client.secretsPath = path
	}
}

// WithConfig supplies a pre-built configuration, bypassing the secrets file.
func WithConfig(cfg *Config) ClientOption {
	return func(client *Client) {
		client.loadOnce.Do(func() {})
		client.cfg = cfg
	}
}

// NewClient creates a Firefly III API client with default settings.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		logger:      slog.Default(),
		secretsPath: SecretsPath(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// config returns the loaded configuration, reading the secrets file at most
// once per process even under concurrent calls.
func (c *Client) config() (*Config, error) {
	c.loadOnce.Do(func() {
		c.cfg, c.cfgErr = LoadConfig(c.secretsPath)
		if c.cfgErr != nil {
			c.logger.Error("Failed to load Firefly III configuration", "path", c.secretsPath, "error", c.cfgErr)
		}
	})
	if c.cfgErr != nil {
		return nil, c.cfgErr
	}
	if c.cfg == nil {
		return nil, &apierrors.ConfigError{Path: c.secretsPath, Message: "no configuration loaded"}
	}
	return c.cfg, nil
}

// Do issues one request against the versioned API. path is the endpoint
// beneath /v1 (e.g. "/accounts"). body, when non-nil, is JSON-encoded; out,
// when non-nil, receives the decoded response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	reqURL := cfg.BaseURL + "/v1" + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordBackendCall(domainOf(path), method, time.Since(start).Seconds(), false, "")
		return fmt.Errorf("request failed: %w", err)
	}
	raw, err := readAndClose(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Firefly III request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= 400 {
		metrics.RecordBackendCall(domainOf(path), method, time.Since(start).Seconds(), false, strconv.Itoa(resp.StatusCode))
		return apiError(resp, raw)
	}
	metrics.RecordBackendCall(domainOf(path), method, time.Since(start).Seconds(), true, "")
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// DoRaw issues an arbitrary request with path appended verbatim to the
// configured base address. It is the escape hatch behind the raw-request
// tool and bypasses the versioned-path convention of Do.
func (c *Client) DoRaw(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, 0, err
	}

	var payload io.Reader
	if len(body) > 0 {
		payload = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, cfg.BaseURL+path, payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	raw, err := readAndClose(resp)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return raw, resp.StatusCode, apiError(resp, raw)
	}
	return raw, resp.StatusCode, nil
}

// apiError extracts the backend's structured message when present, falling
// back to the HTTP status text.
func apiError(resp *http.Response, raw []byte) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &apierrors.APIError{Status: resp.StatusCode, Message: body.Message}
	}
	return &apierrors.APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}

// domainOf reduces an API path to its first segment for metric labels, so
// "/accounts/1/transactions?limit=5" counts against "accounts".
func domainOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "unknown"
	}
	return path
}

func readAndClose(resp *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return raw, err
}
