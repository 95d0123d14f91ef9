package domain

import (
	"context"
	"errors"
	"time"
)

// Response is a decoded API response. Non-2xx responses are returned as a
// Response with the decoded problem body, not as an error.
type Response struct {
	Body        Object
	StatusCode  int
	RetrievedAt time.Time
	FromCache   bool
}

// OK reports whether the response carries a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher issues a single GET and decodes the JSON body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Response, error)
}

// ErrAddressNotFound is returned by a Geocoder when no match exists.
var ErrAddressNotFound = errors.New("address not found")

// GeocodeResult is a one-line address resolved to coordinates.
type GeocodeResult struct {
	Lat            float64
	Lon            float64
	MatchedAddress string
}

// Geocoder resolves free-form street addresses.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}
