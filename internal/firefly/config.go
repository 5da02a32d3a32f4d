package firefly

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
)

// DefaultSecretsFile is the fixed location of the shared MCP secrets file,
// relative to the user's home directory.
const DefaultSecretsFile = ".config/mcp-secrets.json"

// Config holds Firefly III connection settings.
type Config struct {
	// BaseURL is the API root, normalized to end with /api.
	// Versioned endpoints are addressed beneath it as /v1/<path>.
	BaseURL string

	// Token is the personal access token used as a bearer credential.
	Token string
}

// secretsFile mirrors the on-disk layout of ~/.config/mcp-secrets.json.
// The file is shared between MCP servers; this server only reads the
// "firefly" section.
type secretsFile struct {
	Firefly struct {
		BaseURL string `json:"base_url"`
		Token   string `json:"token"`
	} `json:"firefly"`
}

// SecretsPath returns the secrets file location: the FIREFLY_SECRETS_FILE
// environment variable when set, otherwise the fixed default under $HOME.
func SecretsPath() string {
	if p := os.Getenv("FIREFLY_SECRETS_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSecretsFile
	}
	return filepath.Join(home, DefaultSecretsFile)
}

// LoadConfig reads and validates the secrets file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &apierrors.ConfigError{Path: path, Message: "secrets file not readable: " + err.Error()}
	}

	var secrets secretsFile
	if err := json.Unmarshal(raw, &secrets); err != nil {
		return nil, &apierrors.ConfigError{Path: path, Message: "secrets file is not valid JSON: " + err.Error()}
	}

	if secrets.Firefly.BaseURL == "" || secrets.Firefly.Token == "" {
		return nil, &apierrors.ConfigError{Path: path, Message: "missing base_url or token in firefly section"}
	}

	return &Config{
		BaseURL: NormalizeBaseURL(secrets.Firefly.BaseURL),
		Token:   secrets.Firefly.Token,
	}, nil
}

// NormalizeBaseURL trims trailing slashes and ensures the /api suffix is
// present exactly once. The Firefly III API lives under <host>/api; version
// segments are appended per request.
func NormalizeBaseURL(raw string) string {
	base := strings.TrimRight(raw, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return base
}
