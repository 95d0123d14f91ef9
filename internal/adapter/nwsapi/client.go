// Package nwsapi dispatches GET requests to api.weather.gov and decodes the
// JSON bodies it returns.
package nwsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
)

const acceptHeader = "application/geo+json, application/ld+json;q=0.9, application/json;q=0.8"

// maxBodyBytes bounds a single decoded response. The largest NWS payloads
// (full alert and product listings) stay well below this.
const maxBodyBytes = 64 << 20

// Client implements domain.Fetcher over net/http. Non-2xx responses are
// returned with their decoded problem body and status code, not as errors.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a dispatcher that identifies itself with userAgent, as the
// NWS API requires.
func NewClient(userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch issues a GET for url and decodes the JSON object in the response.
// Transport failures and undecodable 2xx bodies are returned as errors.
func (c *Client) Fetch(ctx context.Context, url string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Response{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	out := domain.Response{
		StatusCode:  resp.StatusCode,
		RetrievedAt: domain.Now(),
	}

	body, err := decodeObject(io.LimitReader(resp.Body, maxBodyBytes))
	switch {
	case err == nil:
		out.Body = body
	case out.OK():
		return domain.Response{}, fmt.Errorf("decode %s: %w", url, err)
	default:
		// Gateway errors in front of the API answer with HTML.
		c.logger.Debug("undecodable error body", "url", url, "status", resp.StatusCode, "error", err)
		out.Body = domain.Object{}
	}

	c.logger.Debug("nws request", "url", url, "status", resp.StatusCode)
	return out, nil
}

var errNotObject = errors.New("response body is not a JSON object")

func decodeObject(r io.Reader) (domain.Object, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	obj := domain.AsObject(v)
	if obj == nil {
		return nil, errNotObject
	}
	return obj, nil
}
