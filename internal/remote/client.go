// Package remote talks to the settings sync service. The service exposes a
// whole-object GET/PUT pair; there is no partial-update endpoint and the
// client does not retry.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caarlos0/env/v9"

	"sceneloom/internal/models"
)

const settingsPath = "/api/v1/settings"

// Config is read from the environment. An empty BaseURL disables sync
// entirely; the app then runs on local cache and defaults alone.
type Config struct {
	BaseURL string        `env:"SCENELOOM_SYNC_URL"`
	Token   string        `env:"SCENELOOM_SYNC_TOKEN"`
	Timeout time.Duration `env:"SCENELOOM_SYNC_TIMEOUT" envDefault:"10s"`
}

// ConfigFromEnv parses the sync client configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing sync config: %w", err)
	}
	return cfg, nil
}

// Client consumes the remote settings service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
	}
}

// Enabled reports whether a sync endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Fetch returns the remote settings payload as a raw object so the caller
// can merge it field by field. A nil map with a nil error means the service
// has no configuration for this client yet (null body or 404).
func (c *Client) Fetch(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+settingsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building settings request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching settings: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading settings response: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding settings response: %w", err)
	}
	return payload, nil
}

// Push overwrites the remote settings with the full aggregate. Idempotent;
// callers treat failure as best-effort and only log it.
func (c *Client) Push(ctx context.Context, settings models.Settings) error {
	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+settingsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building settings request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pushing settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("pushing settings: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
