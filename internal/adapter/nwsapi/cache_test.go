package nwsapi

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher answers every URL with the configured status and counts calls.
type countingFetcher struct {
	mu     sync.Mutex
	calls  map[string]int
	status int
	err    error
}

func newCountingFetcher(status int) *countingFetcher {
	return &countingFetcher{calls: make(map[string]int), status: status}
}

func (f *countingFetcher) Fetch(_ context.Context, url string) (domain.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	if f.err != nil {
		return domain.Response{}, f.err
	}
	return domain.Response{
		Body:        domain.Object{"url": url},
		StatusCode:  f.status,
		RetrievedAt: domain.Now(),
	}, nil
}

func (f *countingFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

const glossaryURL = "https://api.weather.gov/glossary"

func TestCachedFetcher_Hit(t *testing.T) {
	clk := freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	metrics := observability.NewMetricsForTesting()
	c := NewCachedFetcher(inner, 5*time.Minute, 10, metrics)

	first, err := c.Fetch(context.Background(), glossaryURL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	clk.Advance(time.Minute)
	second, err := c.Fetch(context.Background(), glossaryURL)
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.Equal(t, first.RetrievedAt, second.RetrievedAt, "cached response keeps its original stamp")
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, 1, inner.count(glossaryURL))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Cache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Cache.WithLabelValues("miss")))
}

func TestCachedFetcher_Expiry(t *testing.T) {
	clk := freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	c := NewCachedFetcher(inner, 50*time.Millisecond, 10, observability.NewMetricsForTesting())

	_, err := c.Fetch(context.Background(), glossaryURL)
	require.NoError(t, err)

	clk.Advance(5 * time.Minute)
	var resp domain.Response
	require.Eventually(t, func() bool {
		resp, err = c.Fetch(context.Background(), glossaryURL)
		return err == nil && !resp.FromCache
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, testNow.Add(5*time.Minute), resp.RetrievedAt)
	assert.Equal(t, 2, inner.count(glossaryURL))
}

func TestCachedFetcher_ErrorStatusNotCached(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusBadRequest)
	c := NewCachedFetcher(inner, 5*time.Minute, 10, observability.NewMetricsForTesting())

	for i := 0; i < 3; i++ {
		resp, err := c.Fetch(context.Background(), glossaryURL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, resp.FromCache)
	}
	assert.Equal(t, 3, inner.count(glossaryURL))
}

func TestCachedFetcher_TransportErrorPassesThrough(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	inner.err = errors.New("connection refused")
	c := NewCachedFetcher(inner, 5*time.Minute, 10, observability.NewMetricsForTesting())

	_, err := c.Fetch(context.Background(), glossaryURL)
	require.EqualError(t, err, "connection refused")
}

func TestCachedFetcher_Disabled(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	metrics := observability.NewMetricsForTesting()
	c := NewCachedFetcher(inner, 0, 10, metrics)

	_, _ = c.Fetch(context.Background(), glossaryURL)
	_, _ = c.Fetch(context.Background(), glossaryURL)

	assert.Equal(t, 2, inner.count(glossaryURL))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Cache.WithLabelValues("miss")))
}

func TestCachedFetcher_DistinctURLs(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	c := NewCachedFetcher(inner, time.Hour, 1, observability.NewMetricsForTesting())

	other := "https://api.weather.gov/offices/BOX"
	_, _ = c.Fetch(context.Background(), glossaryURL)
	_, _ = c.Fetch(context.Background(), other) // evicts glossaryURL
	_, _ = c.Fetch(context.Background(), glossaryURL)

	assert.Equal(t, 2, inner.count(glossaryURL))
	assert.Equal(t, 1, inner.count(other))
}

func TestCachedFetcher_LeastRecentlyUsedEvicted(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	c := NewCachedFetcher(inner, time.Hour, 2, observability.NewMetricsForTesting())

	office := "https://api.weather.gov/offices/BOX"
	zones := "https://api.weather.gov/zones/coastal"
	_, _ = c.Fetch(context.Background(), glossaryURL)
	_, _ = c.Fetch(context.Background(), office)
	_, _ = c.Fetch(context.Background(), glossaryURL) // office is now least recently used
	_, _ = c.Fetch(context.Background(), zones)

	resp, err := c.Fetch(context.Background(), glossaryURL)
	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	_, _ = c.Fetch(context.Background(), office)

	assert.Equal(t, 1, inner.count(glossaryURL))
	assert.Equal(t, 2, inner.count(office))
	assert.Equal(t, 1, inner.count(zones))
}

func TestCachedFetcher_NonPositiveSizeHoldsOneEntry(t *testing.T) {
	freezeClock(t)
	inner := newCountingFetcher(http.StatusOK)
	c := NewCachedFetcher(inner, time.Hour, 0, observability.NewMetricsForTesting())

	_, _ = c.Fetch(context.Background(), glossaryURL)
	resp, err := c.Fetch(context.Background(), glossaryURL)
	require.NoError(t, err)

	assert.True(t, resp.FromCache)
	assert.Equal(t, 1, inner.count(glossaryURL))
}
