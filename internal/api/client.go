package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zeroentropy/client-go/internal/apierrors"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.2.0"

const defaultUserAgent = "zeroentropy-go/" + Version

// Defaults applied when Config leaves the corresponding field unset.
const (
	DefaultBaseURL    = "https://api.zeroentropy.dev/v1"
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 2
)

// maxErrorBodySize caps how much of an error response body is read when
// extracting a message.
const maxErrorBodySize = 64 << 10

// RateLimiter throttles outgoing requests. Wait blocks until the request
// may proceed or ctx is canceled. *rate.Limiter from golang.org/x/time/rate
// satisfies this interface.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Config holds the settings for an API client.
type Config struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is sent as a bearer token on every request. Required.
	APIKey string
	// HTTPClient overrides the default HTTP client when non-nil.
	HTTPClient *http.Client
	// Timeout bounds each attempt when HTTPClient is nil. Defaults to
	// DefaultTimeout.
	Timeout time.Duration
	// Retry overrides the default retry policy when non-nil.
	Retry *RetryConfig
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Logger, when non-nil, receives a debug line per request and response.
	Logger *slog.Logger
	// Limiter, when non-nil, is consulted before every attempt.
	Limiter RateLimiter
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	userAgent  string
	logger     *slog.Logger
	limiter    RateLimiter
}

// New creates a new API client. It validates the configuration and performs
// no network I/O.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid base URL %q: missing scheme", baseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultRetryConfig()
	}
	if retry.RetryableOn == nil {
		retry.RetryableOn = apierrors.RetryableStatus
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		retry:      retry,
		userAgent:  userAgent,
		logger:     cfg.Logger,
		limiter:    cfg.Limiter,
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post executes a POST request against path. Every endpoint of this API is
// a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Do executes one logical API call, retrying transient failures per the
// client's retry policy. The body is marshaled to JSON once and replayed on
// each attempt; the response is decoded into result when result is non-nil.
// When retries are exhausted the last classified error is returned, never a
// synthesized one.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	u := c.baseURL + path
	requestID := newRequestID()

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return &apierrors.TransportError{Err: err, URL: u, Attempts: attempt}
			}
		}

		req, err := c.newRequest(ctx, method, u, requestID, payload)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if c.logger != nil {
			c.logger.Debug("request", "method", method, "url", u, "attempt", attempt+1)
		}
		start := time.Now()

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.logger != nil {
				c.logger.Debug("request failed", "method", method, "url", u, "error", err)
			}
			// A done context means the caller canceled or timed out;
			// surface that instead of burning retries.
			if ctx.Err() != nil {
				return &apierrors.TransportError{Err: ctx.Err(), URL: u, Attempts: attempt + 1}
			}
			if attempt < c.retry.MaxRetries {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return &apierrors.TransportError{Err: werr, URL: u, Attempts: attempt + 1}
				}
				continue
			}
			return &apierrors.TransportError{Err: err, URL: u, Attempts: attempt + 1}
		}

		if c.logger != nil {
			c.logger.Debug("response", "method", method, "url", u,
				"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return decodeResponse(resp, result)
		}

		apiErr := parseErrorResponse(resp, requestID)
		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return &apierrors.TransportError{Err: werr, URL: u, Attempts: attempt + 1}
			}
			continue
		}
		return apiErr
	}
}

// newRequest builds the HTTP request for one attempt. Requests are rebuilt
// per attempt so a consumed body reader never poisons a retry.
func (c *Client) newRequest(ctx context.Context, method, url, requestID string, payload []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	return req, nil
}

// decodeResponse decodes a 2xx body into result. A malformed body yields a
// DecodeError, never a panic; an empty body leaves result untouched.
func decodeResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	if result == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.DecodeError{Err: err}
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return &apierrors.DecodeError{Err: err}
	}
	return nil
}

// parseErrorResponse classifies a non-2xx response into an APIError,
// extracting the server's message when one is present.
func parseErrorResponse(resp *http.Response, requestID string) *apierrors.APIError {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	if id := resp.Header.Get(requestIDHeader); id != "" {
		requestID = id
	}

	return &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    extractMessage(resp.StatusCode, body),
		RequestID:  requestID,
	}
}

// extractMessage pulls a human-readable message out of an error body.
// Structured fields win over raw text; an empty body falls back to the
// standard status phrase.
func extractMessage(status int, body []byte) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
		if len(envelope.Detail) > 0 {
			var s string
			if err := json.Unmarshal(envelope.Detail, &s); err == nil {
				return s
			}
			return string(envelope.Detail)
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}
