package nwsapi

import (
	"context"
	"net/http"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedFetcher wraps a Fetcher with a URL-keyed response cache bounded by
// both age and entry count. Only 200 responses are cached.
type CachedFetcher struct {
	inner   domain.Fetcher
	cache   *expirable.LRU[string, domain.Response]
	metrics *observability.Metrics
}

// NewCachedFetcher creates a cache decorator around a fetcher. A non-positive
// ttl disables caching; maxEntries is at least 1.
func NewCachedFetcher(inner domain.Fetcher, ttl time.Duration, maxEntries int, metrics *observability.Metrics) *CachedFetcher {
	c := &CachedFetcher{inner: inner, metrics: metrics}
	if ttl > 0 {
		c.cache = expirable.NewLRU[string, domain.Response](max(maxEntries, 1), nil, ttl)
	}
	return c
}

// Fetch serves url from the cache when a fresh entry exists. Cached responses
// keep their original retrieval time and are marked FromCache.
func (c *CachedFetcher) Fetch(ctx context.Context, url string) (domain.Response, error) {
	if c.cache == nil {
		return c.inner.Fetch(ctx, url)
	}

	if resp, ok := c.cache.Get(url); ok {
		c.metrics.Cache.WithLabelValues("hit").Inc()
		resp.FromCache = true
		return resp, nil
	}
	c.metrics.Cache.WithLabelValues("miss").Inc()

	resp, err := c.inner.Fetch(ctx, url)
	if err != nil {
		return resp, err
	}
	if resp.StatusCode == http.StatusOK {
		c.cache.Add(url, resp)
	}
	return resp, nil
}
