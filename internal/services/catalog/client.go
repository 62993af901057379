package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/killallgit/podcast-search/pkg/logger"
	"golang.org/x/time/rate"
)

var (
	// ErrRateLimited indicates the upstream answered 429 on every attempt
	ErrRateLimited = errors.New("catalog rate limit exceeded")

	// ErrInvalidResponse indicates the upstream returned a body we could not decode
	ErrInvalidResponse = errors.New("invalid response from catalog")
)

// StatusError is a non-OK upstream status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Config holds configuration for the catalog client
type Config struct {
	BaseURL           string
	Timeout           time.Duration // Default: 10s
	RetryAttempts     int           // Default: 3 (total attempts)
	RetryBackoff      time.Duration // Default: 500ms, doubled per retry
	RequestsPerSecond int           // 0 disables client-side limiting
	Burst             int
	UserAgent         string
}

// Client talks to the upstream podcast catalog
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     *url.URL
	config      Config
}

// NewClient creates a new catalog client
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 500 * time.Millisecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "PodcastSearch/1.0"
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("catalog url must be absolute: %q", cfg.BaseURL)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: limiter,
		baseURL:     base,
		config:      cfg,
	}, nil
}

// BaseURL returns the configured upstream URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// listURL maps a query onto the upstream's p/l/search parameters
func (c *Client) listURL(q Query) string {
	u := *c.baseURL
	params := u.Query()
	params.Set("p", strconv.Itoa(q.Page))
	params.Set("l", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	u.RawQuery = params.Encode()
	return u.String()
}

// List fetches one page of podcasts. A 404 from the upstream means an empty page.
func (c *Client) List(ctx context.Context, q Query) ([]Podcast, error) {
	target := c.listURL(q)

	var lastErr error
	backoff := c.config.RetryBackoff

	for attempt := 0; attempt < c.config.RetryAttempts; attempt++ {
		items, err := c.doRequest(ctx, target)
		if err == nil {
			return items, nil
		}
		if !isRetryable(err) || ctx.Err() != nil {
			return nil, err
		}

		lastErr = err
		if attempt == c.config.RetryAttempts-1 {
			break
		}

		logger.WithContext(ctx).Warn().
			Err(err).
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Msg("catalog request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doRequest(ctx context.Context, target string) ([]Podcast, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making the request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return []Podcast{}, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	items, err := decodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

// isRetryable reports whether a failed attempt may succeed on retry
func isRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
