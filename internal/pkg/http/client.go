package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/freightdesk/internal/pkg/logger"
	nrpkg "github.com/piresc/freightdesk/internal/pkg/newrelic"
	"github.com/piresc/freightdesk/internal/pkg/retry"
)

// Config configures a Client
type Config struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	Retry   *retry.Config
}

// Client is a JSON client for outbound gateways. 5xx responses and transport
// errors are retried, 4xx responses are returned as *Error without retry.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	retrier    *retry.Retrier
}

// Error is a non-2xx response
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new HTTP client
func NewClient(config Config, l *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	retryConfig := retry.DefaultConfig()
	if config.Retry != nil {
		retryConfig = *config.Retry
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		headers:    config.Headers,
		httpClient: &http.Client{Timeout: config.Timeout},
		retrier:    retry.New(retryConfig, l),
	}
}

// PostJSON posts body as JSON and decodes a 2xx response into out when out is non-nil
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// GetJSON decodes a 2xx response into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}

		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.httpClient.Do(req)
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			herr := &Error{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return herr
			}
			return retry.Permanent(herr)
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	})
}
