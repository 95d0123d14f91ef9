// Package nws fetches National Weather Service API endpoints and normalizes
// their bodies into domain records. Each method issues exactly one request,
// except GetLocation, which geocodes before fetching.
package nws

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/observability"
)

// DefaultBaseURL is the public NWS API.
const DefaultBaseURL = "https://api.weather.gov"

// APIError is returned for non-2xx responses. Title and Detail come from the
// problem+json body when the API sends one.
type APIError struct {
	URL        string
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("nws api: GET %s: status %d", e.URL, e.StatusCode)
	if e.Title != "" {
		msg += ": " + e.Title
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func newAPIError(u string, resp domain.Response) *APIError {
	e := &APIError{URL: u, StatusCode: resp.StatusCode}
	if s := resp.Body.String("title"); s != nil {
		e.Title = *s
	}
	if s := resp.Body.String("detail"); s != nil {
		e.Detail = *s
	}
	return e
}

// Client is the NWS endpoint catalogue.
type Client struct {
	fetcher  domain.Fetcher
	geocoder domain.Geocoder
	baseURL  string
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewClient creates a client that dispatches through fetcher and resolves
// street addresses with geocoder. An empty baseURL selects DefaultBaseURL.
func NewClient(fetcher domain.Fetcher, geocoder domain.Geocoder, baseURL string, logger *slog.Logger, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		fetcher:  fetcher,
		geocoder: geocoder,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		metrics:  metrics,
	}
}

// get fetches path and converts non-2xx responses into *APIError. endpoint
// labels the request in metrics.
func (c *Client) get(ctx context.Context, endpoint, path string) (domain.Response, error) {
	resp, u, err := c.fetch(ctx, endpoint, path)
	if err != nil {
		return resp, err
	}
	if !resp.OK() {
		return resp, newAPIError(u, resp)
	}
	return resp, nil
}

// fetch performs the request without judging the status code.
func (c *Client) fetch(ctx context.Context, endpoint, path string) (domain.Response, string, error) {
	u := c.baseURL + path
	start := time.Now()
	resp, err := c.fetcher.Fetch(ctx, u)
	c.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.Requests.WithLabelValues(endpoint, "error").Inc()
		return resp, u, fmt.Errorf("%s: %w", endpoint, err)
	}
	c.metrics.Requests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.Body == nil {
		resp.Body = domain.Object{}
	}
	return resp, u, nil
}

// segments joins escaped path segments into an absolute path.
func segments(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}
