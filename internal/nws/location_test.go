package nws

import (
	"context"
	"testing"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/nws/nwstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "1 City Hall Square, Boston, MA 02201"

func TestClient_GetLocation(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.client.GetLocation(context.Background(), testAddress)
	require.NoError(t, err)

	assert.EqualValues(t, 1, env.server.Calls("geocode"))
	assert.EqualValues(t, 1, env.server.Calls("points"))
	assert.Equal(t, "/points/42.3601,-71.0581", env.server.Requests()[1])

	assert.Equal(t, "1 CITY HALL SQ, BOSTON, MA, 02201", loc.Address)
	assert.Equal(t, "BOX", *loc.GridID)
	assert.EqualValues(t, 71, *loc.GridX)
	assert.EqualValues(t, 90, *loc.GridY)
	assert.Equal(t, "Boston", *loc.City)
	assert.Equal(t, testNow, loc.RetrievedAt)
}

func TestClient_GetLocation_UnknownAddress(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.GetLocation(context.Background(), "1 "+nwstest.UnknownAddress+" Road")
	require.ErrorIs(t, err, domain.ErrAddressNotFound)
	assert.Zero(t, env.server.Calls("points"))
}

func TestClient_GetPoint(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.client.GetPoint(context.Background(), 42.36011, -71.05813)
	require.NoError(t, err)

	assert.Equal(t, []string{"/points/42.3601,-71.0581"}, env.server.Requests())
	assert.Empty(t, loc.Address)
	assert.Equal(t, "KBOX", *loc.RadarStation)
}

func TestClient_GetStationsNearLocation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	loc, err := env.client.GetPoint(ctx, 42.3601, -71.0581)
	require.NoError(t, err)
	stations, err := env.client.GetStationsNearLocation(ctx, loc)
	require.NoError(t, err)

	assert.Equal(t, "/gridpoints/BOX/71,90/stations", env.server.Requests()[1])
	require.Len(t, stations, 2)
	assert.Equal(t, "KBOS", *stations[0].StationID)
}

func TestClient_GridpointEndpointsRequireGrid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	var loc domain.Location

	_, err := env.client.GetStationsNearLocation(ctx, loc)
	require.ErrorIs(t, err, ErrNoGridpoint)
	_, err = env.client.GetExtendedForecast(ctx, loc)
	require.ErrorIs(t, err, ErrNoGridpoint)
	_, err = env.client.GetHourlyForecast(ctx, loc)
	require.ErrorIs(t, err, ErrNoGridpoint)

	assert.Zero(t, env.server.TotalCalls())
}

func TestClient_Forecasts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	validFrom := time.Date(2024, 8, 19, 12, 0, 0, 0, time.UTC)
	env.server.SetValidTimes(validFrom)

	loc, err := env.client.GetPoint(ctx, 42.3601, -71.0581)
	require.NoError(t, err)

	extended, err := env.client.GetExtendedForecast(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "extended", extended.Kind)
	require.Len(t, extended.Periods, 2)
	assert.Equal(t, "This Afternoon", *extended.Periods[0].Name)
	assert.InDelta(t, 25, *extended.Periods[0].TemperatureCelsius, 1e-9)
	assert.True(t, validFrom.Equal(*extended.ValidFrom))
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), *extended.ValidForSeconds, 1e-9)

	hourly, err := env.client.GetHourlyForecast(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "hourly", hourly.Kind)
	assert.Len(t, hourly.Periods, 2)

	assert.Equal(t, []string{
		"/points/42.3601,-71.0581",
		"/gridpoints/BOX/71,90/forecast",
		"/gridpoints/BOX/71,90/forecast/hourly",
	}, env.server.Requests())
}

func TestClient_Observations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	latest, err := env.client.GetLatestObservation(ctx, "KBOS")
	require.NoError(t, err)
	assert.Equal(t, "KBOS", *latest.StationID)
	assert.InDelta(t, 22.2, *latest.TemperatureCelsius, 1e-9)

	all, err := env.client.GetObservations(ctx, "KBOS")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	at := time.Date(2024, 8, 19, 14, 54, 0, 0, time.FixedZone("EDT", -4*60*60))
	_, err = env.client.GetObservationAt(ctx, "KBOS", at)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/stations/KBOS/observations/latest",
		"/stations/KBOS/observations",
		"/stations/KBOS/observations/2024-08-19T18:54:00+00:00",
	}, env.server.Requests())
}
