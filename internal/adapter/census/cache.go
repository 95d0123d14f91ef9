package census

import (
	"context"
	"strings"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache keyed by the
// normalized address text. Entries never expire; addresses do not move.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *expirable.LRU[string, domain.GeocodeResult]
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder holding at
// least one entry.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   expirable.NewLRU[string, domain.GeocodeResult](max(maxEntries, 1), nil, 0),
		metrics: metrics,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	key := strings.ToUpper(strings.Join(strings.Fields(address), " "))
	if result, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	// Errors, including "not found", are not cached so they can be retried.
	result, err := c.inner.Geocode(ctx, address)
	if err != nil {
		return result, err
	}
	c.cache.Add(key, result)
	return result, nil
}
