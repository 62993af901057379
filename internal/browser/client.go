package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ErrResponseNotOK is returned for any non-2xx API response. The text is shown to the user as is.
var ErrResponseNotOK = errors.New("Network response was not ok")

// ListPath is where the API serves the podcast list
const ListPath = "/api/podcasts"

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 8 << 20

// Fetcher loads one page of results
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (*Response, error)
}

// Client calls the podcast search API
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing api url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api url must be absolute: %q", baseURL)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   base.JoinPath(ListPath),
	}, nil
}

// URL returns the request URL for q
func (c *Client) URL(q Query) string {
	u := *c.endpoint
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch GETs one page of podcasts
func (c *Client) Fetch(ctx context.Context, q Query) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w (status %d)", ErrResponseNotOK, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if out.Items == nil {
		out.Items = []Podcast{}
	}
	return &out, nil
}

// CloseIdleConnections releases pooled connections
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
