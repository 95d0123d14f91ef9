// Package census geocodes one-line street addresses with the U.S. Census
// Bureau geocoder.
package census

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// DefaultURL is the Census one-line address endpoint.
const DefaultURL = "https://geocoding.geo.census.gov/geocoder/locations/onelineaddress"

// Benchmark selects the address range snapshot the geocoder matches against.
const Benchmark = "Public_AR_Current"

// Client implements domain.Geocoder.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Census geocoding client.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Geocode resolves address to the coordinates of its first match. It returns
// domain.ErrAddressNotFound when the geocoder has no match.
func (c *Client) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	params := url.Values{
		"address":   {address},
		"benchmark": {Benchmark},
		"format":    {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.GeocodeResult{}, fmt.Errorf("census geocoder error: status %d: %s", resp.StatusCode, body)
	}

	var censusResp response
	if err := json.NewDecoder(resp.Body).Decode(&censusResp); err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("decode response: %w", err)
	}

	if len(censusResp.Result.AddressMatches) == 0 {
		return domain.GeocodeResult{}, fmt.Errorf("%q: %w", address, domain.ErrAddressNotFound)
	}

	m := censusResp.Result.AddressMatches[0]
	c.logger.Debug("address geocoded", "address", address, "matched", m.MatchedAddress)
	return domain.GeocodeResult{
		Lat:            m.Coordinates.Y,
		Lon:            m.Coordinates.X,
		MatchedAddress: m.MatchedAddress,
	}, nil
}

// Census geocoder response types.

type response struct {
	Result struct {
		AddressMatches []addressMatch `json:"addressMatches"`
	} `json:"result"`
}

type addressMatch struct {
	MatchedAddress string `json:"matchedAddress"`
	Coordinates    struct {
		X float64 `json:"x"` // longitude
		Y float64 `json:"y"` // latitude
	} `json:"coordinates"`
}
