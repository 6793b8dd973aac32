package zeroentropy

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Environment variables consulted when the corresponding value is not
// supplied explicitly.
const (
	// EnvAPIKey names the variable holding the API key.
	EnvAPIKey = "ZEROENTROPY_API_KEY"
	// EnvBaseURL names the variable overriding the API base URL.
	EnvBaseURL = "ZEROENTROPY_BASE_URL"
)

const (
	defaultBaseURL     = "https://api.zeroentropy.dev/v1"
	defaultTimeout     = 60 * time.Second
	defaultMaxRetries  = 2
	defaultWaitTimeout = 60 * time.Second
)

// RateLimiter gates outgoing requests. Wait blocks until a request may
// proceed or the context ends. *rate.Limiter from golang.org/x/time/rate
// satisfies this interface.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	retryOn    []int
	userAgent  string
	logger     *slog.Logger
	limiter    RateLimiter
}

// waitConfig holds configuration for waiting on document indexing.
type waitConfig struct {
	timeout         time.Duration
	pollInterval    time.Duration
	maxPollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WaitOption configures index-status waiting.
type WaitOption func(*waitConfig)

// WithBaseURL sets the API base URL. It takes precedence over the
// ZEROENTROPY_BASE_URL environment variable.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client is used as-is,
// including its timeout; WithTimeout has no effect in that case.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-call timeout, covering all retry attempts.
// Default: 60 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of retries after a failed attempt, so a
// call makes at most count+1 attempts. Zero disables retries.
// Default: 2.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: 408, 409, 429 and all 5xx codes.
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a logger for request and retry diagnostics. Requests
// are logged at debug level. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimiter installs a limiter consulted before every attempt,
// including retries.
func WithRateLimiter(limiter RateLimiter) Option {
	return func(c *clientConfig) {
		c.limiter = limiter
	}
}

// WithWaitTimeout sets the overall timeout for waiting.
// Default: 60 seconds.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the initial polling interval.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// WithMaxPollInterval caps the polling backoff growth.
// Default: 30 seconds.
func WithMaxPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.maxPollInterval = interval
	}
}
