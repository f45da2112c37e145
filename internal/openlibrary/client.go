package openlibrary

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Open Library host
	DefaultBaseURL = "https://openlibrary.org"

	defaultTimeout = 30 * time.Second
	// Open Library asks for roughly one request per second
	defaultInterval = time.Second
	defaultBurst    = 3
)

// IDAllocator hands out the id given to lookup candidates
type IDAllocator interface {
	NextID() int
}

// Client searches the Open Library catalog for candidate books
type Client struct {
	BaseURL     string
	ids         IDAllocator
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	now         func() time.Time
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout on a copy of the current http.Client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithInterval sets the minimum spacing between requests. Zero disables pacing.
func WithInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval <= 0 {
			c.rateLimiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.rateLimiter = rate.NewLimiter(rate.Every(interval), defaultBurst)
	}
}

// WithLogger sets the logger used for lookup failures
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Open Library client. ids supplies the id stamped
// on every candidate; *storage.Store satisfies it.
func NewClient(baseURL string, ids IDAllocator, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: baseURL,
		ids:     ids,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(defaultInterval), defaultBurst),
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wait blocks until the rate limiter allows a request
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
