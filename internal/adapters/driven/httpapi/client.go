package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.WorklyAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries a per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderRetryAfter is the backoff header sent with 429 responses.
	HeaderRetryAfter = "Retry-After"
)

// Config holds connection settings shared by Client and AuthGateway.
type Config struct {
	// BaseURL is the backend root (default: http://localhost:8080).
	BaseURL string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RateLimit is the sustained request rate per second. Zero disables throttling.
	RateLimit float64

	// Burst is the maximum burst size.
	Burst int

	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return c
}

// Client calls the authenticated Workly endpoints.
//
// Every request carries the session's current access token. A 401 or 403
// response refreshes the session through the TokenProvider and retries the
// request exactly once; a second rejection ends the session.
type Client struct {
	http     *http.Client
	baseURL  string
	provider driven.TokenProvider
	tokens   oauth2.TokenSource
	limiter  *RateLimiter
}

// NewClient creates a client that authenticates with provider's tokens.
func NewClient(cfg Config, provider driven.TokenProvider) *Client {
	cfg = cfg.withDefaults()

	c := &Client{
		http:     cfg.HTTPClient,
		baseURL:  cfg.BaseURL,
		provider: provider,
		limiter:  NewRateLimiter(cfg.RateLimit, cfg.Burst),
	}
	if provider != nil {
		c.tokens = NewTokenSource(provider)
	}
	return c
}

// do sends a JSON request and decodes the JSON response into out.
// in and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, token, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if isAuthFailure(resp.StatusCode) && c.provider != nil {
		drain(resp)
		logger.Debug("%s %s: status %d, refreshing session", method, path, resp.StatusCode)

		if err := c.provider.Refresh(ctx, token); err != nil {
			return err
		}

		resp, token, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
		if isAuthFailure(resp.StatusCode) {
			drain(resp)
			c.provider.Revoke(ctx, token)
			return fmt.Errorf("%w: %s %s rejected after refresh (status %d)",
				domain.ErrLoggedOut, method, path, resp.StatusCode)
		}
	}
	defer resp.Body.Close()

	return decodeResponse(resp, path, out)
}

// send performs one attempt and returns the access token it carried.
func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	var token string
	if c.tokens != nil {
		if tok, err := c.tokens.Token(); err == nil {
			tok.SetAuthHeader(req)
			token = tok.AccessToken
		}
	}

	logger.Debug("%s %s (request %s, token %s)", method, path, requestID, logger.Redact(token))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &domain.NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimited(parseRetryAfter(resp.Header.Get(HeaderRetryAfter), time.Now()))
	}
	return resp, token, nil
}

// decodeResponse maps a non-2xx status to *domain.APIError and otherwise
// decodes the body into out. Empty bodies and 204 leave out untouched.
func decodeResponse(resp *http.Response, path string, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, path, body)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
