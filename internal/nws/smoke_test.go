//go:build nwslive

package nws

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/nws-client/internal/adapter/census"
	"github.com/couchcryptid/nws-client/internal/adapter/nwsapi"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the live NWS API and Census geocoder.
// Run with: NWS_USER_AGENT="app (you@example.com)" go test -tags=nwslive ./internal/nws/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	ua := os.Getenv("NWS_USER_AGENT")
	if ua == "" {
		t.Fatal("NWS_USER_AGENT must be set to run smoke tests")
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(
		nwsapi.NewClient(ua, 30*time.Second, logger),
		census.NewClient("", ua, 30*time.Second, logger),
		"", logger, observability.NewMetricsForTesting(),
	)
}

func TestSmoke_LocationForecast(t *testing.T) {
	c := smokeClient(t)
	ctx := context.Background()

	loc, err := c.GetLocation(ctx, "1 City Hall Square, Boston, MA 02201")
	require.NoError(t, err)
	require.NotNil(t, loc.GridID)
	assert.Equal(t, "BOX", *loc.GridID)

	stations, err := c.GetStationsNearLocation(ctx, loc)
	require.NoError(t, err)
	assert.NotEmpty(t, stations)

	fc, err := c.GetExtendedForecast(ctx, loc)
	require.NoError(t, err)
	assert.NotEmpty(t, fc.Periods)
}

func TestSmoke_Enumerations(t *testing.T) {
	c := smokeClient(t)
	ctx := context.Background()

	offices, ok, err := c.GetValidForecastOffices(ctx)
	require.NoError(t, err)
	if ok {
		assert.Contains(t, offices, "BOX")
	}

	zones, ok, err := c.GetValidZones(ctx)
	require.NoError(t, err)
	if ok {
		assert.Contains(t, zones, "forecast")
	}
}

func TestSmoke_Glossary(t *testing.T) {
	terms, err := smokeClient(t).GetGlossary(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, terms)
}
