// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api issues requests against the Exa HTTP API. Each command maps to
// one fixed method+path pair; responses are passed through as decoded JSON
// without reinterpretation, and failures are surfaced through the typed
// errors in this package. No retries: one call per invocation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/exa-cli/internal/config"
)

// Fixed endpoint paths.
const (
	PathSearch        = "/search"
	PathContents      = "/contents"
	PathFindSimilar   = "/findSimilar"
	PathAnswer        = "/answer"
	PathContext       = "/context"
	PathResearchTasks = "/research/v0/tasks"
)

// Client is a thin synchronous client over the Exa API. It is built once per
// invocation from resolved settings and never mutated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a Client from resolved settings.
func NewClient(s config.Settings) *Client {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(s.BaseURL, "/"),
		apiKey:     s.APIKey,
	}
}

// Post sends body as JSON to path and returns the decoded response.
func (c *Client) Post(ctx context.Context, path string, body map[string]any) (any, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Get issues a GET against path and returns the decoded response.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (any, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// The API also accepts the key as a plain header; send both.
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	// Pass the body through as decoded JSON; a non-JSON success body is
	// wrapped rather than dropped.
	var payload any
	if err := json.Unmarshal(text, &payload); err != nil {
		return map[string]any{"raw": string(text)}, nil
	}
	return payload, nil
}
