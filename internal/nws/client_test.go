package nws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/couchcryptid/nws-client/internal/adapter/census"
	"github.com/couchcryptid/nws-client/internal/adapter/nwsapi"
	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/nws/nwstest"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "nws-client-test (ops@example.com)"

var testNow = time.Date(2024, 8, 19, 18, 58, 0, 0, time.UTC)

type testEnv struct {
	client  *Client
	server  *nwstest.Server
	metrics *observability.Metrics
	logs    *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(testNow))
	t.Cleanup(func() { domain.SetClock(nil) })

	srv := nwstest.NewServer()
	base := srv.Run()
	t.Cleanup(srv.Close)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	metrics := observability.NewMetricsForTesting()
	fetcher := nwsapi.NewClient(testUserAgent, 5*time.Second, logger)
	geocoder := census.NewClient(srv.GeocoderURL(), testUserAgent, 5*time.Second, logger)

	return &testEnv{
		client:  NewClient(fetcher, geocoder, base, logger, metrics),
		server:  srv,
		metrics: metrics,
		logs:    logs,
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(nil, nil, "", slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c = NewClient(nil, nil, "http://localhost:9000/", nil, nil)
	assert.Equal(t, "http://localhost:9000", c.baseURL)
}

func TestClient_SendsUserAgent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.GetGlossary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testUserAgent, env.server.LastUserAgent())
}

func TestClient_APIErrorCarriesProblemDetails(t *testing.T) {
	env := newTestEnv(t)
	env.server.Fail("office", http.StatusServiceUnavailable)

	_, err := env.client.GetOffice(context.Background(), "BOX")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Service Unavailable", apiErr.Title)
	assert.Equal(t, "injected failure", apiErr.Detail)
	assert.Equal(t, env.server.URL()+"/offices/BOX", apiErr.URL)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "status only",
			err:  APIError{URL: "https://api.weather.gov/glossary", StatusCode: 500},
			want: "nws api: GET https://api.weather.gov/glossary: status 500",
		},
		{
			name: "title and detail",
			err:  APIError{URL: "https://api.weather.gov/zones/forecast/XXZ999", StatusCode: 404, Title: "Not Found", Detail: "zone not found"},
			want: "nws api: GET https://api.weather.gov/zones/forecast/XXZ999: status 404: Not Found: zone not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestClient_TransportErrorWrapsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.server.Close()

	_, err := env.client.GetAlerts(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "alerts: ")
	assert.InDelta(t, 1, testutil.ToFloat64(env.metrics.Requests.WithLabelValues("alerts", "error")), 0)
}

func TestClient_RecordsRequestMetrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.GetAlerts(ctx)
	require.NoError(t, err)
	_, err = env.client.GetAlerts(ctx)
	require.NoError(t, err)

	env.server.Fail("glossary", http.StatusNotFound)
	_, err = env.client.GetGlossary(ctx)
	require.Error(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(env.metrics.Requests.WithLabelValues("alerts", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(env.metrics.Requests.WithLabelValues("glossary", "404")), 0)
}

func TestSegments_EscapesEachPart(t *testing.T) {
	assert.Equal(t, "/products/types/RR2", segments("products", "types", "RR2"))
	assert.Equal(t, "/alerts/urn:oid:2.49.0", segments("alerts", "urn:oid:2.49.0"))
	assert.Equal(t, "/zones/forecast/a%2Fb", segments("zones", "forecast", "a/b"))
	assert.Equal(t, "/stations/KBOS/observations/2024-08-19T18:54:00+00:00",
		segments("stations", "KBOS", "observations", "2024-08-19T18:54:00+00:00"))
}
