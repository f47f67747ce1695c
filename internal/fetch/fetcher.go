package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anthonysuherli/featherweight/internal/logger"
)

const (
	// RequestTimeout bounds each individual attempt.
	RequestTimeout = 30 * time.Second

	// DefaultDelay is the courtesy pause after every request. Basketball
	// Reference throttles clients to 20 requests per minute.
	DefaultDelay = 3100 * time.Millisecond

	DefaultMaxRetries = 3

	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client fetches URLs with bounded retries and exponential backoff. The
// underlying http.Client is created once and reused so that connections
// are shared across calls.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	delay      time.Duration
	maxRetries int
	sleep      func(time.Duration)
	log        *logrus.Entry
}

type Option func(*Client)

// WithDelay sets the minimum spacing enforced after every attempt.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithMaxRetries sets how many attempts are made before giving up.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithHeaders sets extra request headers sent on every attempt.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSleep replaces the sleep function. Tests use this to observe delays
// without waiting them out.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) { c.sleep = fn }
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: RequestTimeout},
		headers:    map[string]string{"User-Agent": UserAgent},
		delay:      DefaultDelay,
		maxRetries: DefaultMaxRetries,
		sleep:      time.Sleep,
		log:        logger.Get().WithField("component", "fetch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxRetries < 1 {
		c.maxRetries = 1
	}
	return c
}

// Fetch retrieves url, retrying transient failures with exponential
// backoff seeded by the base delay. After a successful attempt it still
// sleeps the base delay as rate-limit courtesy. On exhausting retries the
// last error is returned; the caller decides whether that is fatal.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		body, err := c.fetchOnce(ctx, url)
		if err == nil {
			c.sleep(c.delay)
			return body, nil
		}
		lastErr = err

		if attempt < c.maxRetries-1 {
			wait := time.Duration(1<<attempt) * c.delay
			c.log.WithError(err).WithFields(logrus.Fields{
				"url":     url,
				"attempt": attempt + 1,
				"wait":    wait.String(),
			}).Warn("request failed, retrying")
			c.sleep(wait)
		}
	}

	c.log.WithError(lastErr).WithFields(logrus.Fields{
		"url":      url,
		"attempts": c.maxRetries,
	}).Error("request failed after all retries")
	return nil, fmt.Errorf("fetching %s after %d attempts: %w", url, c.maxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
