package zeroentropy

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/zeroentropy/client-go/internal/api"
)

// Version is the SDK release version, reported in the User-Agent header.
const Version = api.Version

// Client is a ZeroEntropy API client. Operations are grouped into
// services: Collections, Documents, Queries and Models. A Client is safe
// for concurrent use and holds no mutable state between calls.
type Client struct {
	api *api.Client

	// Collections manages named document collections.
	Collections *CollectionsService
	// Documents ingests, updates and inspects documents.
	Documents *DocumentsService
	// Queries runs semantic searches over indexed documents.
	Queries *QueriesService
	// Models exposes model operations such as reranking.
	Models *ModelsService
}

// New creates a client. An empty apiKey falls back to the
// ZEROENTROPY_API_KEY environment variable; if neither is set, New
// returns ErrMissingAPIKey. The base URL resolves in the same order:
// WithBaseURL, then ZEROENTROPY_BASE_URL, then the production default.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if parsed, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, baseURL, err)
	} else if !parsed.IsAbs() {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, baseURL)
	}

	if cfg.timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, cfg.timeout)
	}
	if cfg.maxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries must be non-negative, got %d", ErrInvalidConfig, cfg.maxRetries)
	}

	retry := api.DefaultRetryConfig()
	retry.MaxRetries = cfg.maxRetries
	if len(cfg.retryOn) > 0 {
		retry.RetryableOn = api.RetryOnCodes(cfg.retryOn)
	}

	apiClient, err := api.New(api.Config{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Retry:      retry,
		UserAgent:  cfg.userAgent,
		Logger:     cfg.logger,
		Limiter:    cfg.limiter,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{api: apiClient}
	c.Collections = &CollectionsService{api: apiClient}
	c.Documents = &DocumentsService{api: apiClient}
	c.Queries = &QueriesService{api: apiClient}
	c.Models = &ModelsService{api: apiClient}
	return c, nil
}

// FromEnv creates a client configured entirely from the environment.
// It is shorthand for New("", opts...).
func FromEnv(opts ...Option) (*Client, error) {
	return New("", opts...)
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// Status reports the total number of documents and collections for the
// account. It is also the cheapest call for verifying an API key.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.api.Post(ctx, "/status/get-status", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
