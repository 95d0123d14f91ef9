package nws

import (
	"context"
	"net/http"
	"testing"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetOffice(t *testing.T) {
	env := newTestEnv(t)

	office, err := env.client.GetOffice(context.Background(), "BOX")
	require.NoError(t, err)

	assert.Equal(t, []string{"/offices/BOX"}, env.server.Requests())
	assert.Equal(t, "BOX", *office.OfficeID)
	assert.Equal(t, "Norton", *office.City)
	assert.Len(t, office.ObservationStations, 2)
}

func TestClient_InvalidOfficeMakesNoRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.GetOffice(ctx, "XYZ")
	require.ErrorIs(t, err, domain.ErrInvalidOffice)
	_, err = env.client.GetOfficeHeadlines(ctx, "box")
	require.ErrorIs(t, err, domain.ErrInvalidOffice)
	_, err = env.client.GetOfficeHeadline(ctx, "", "a194056daf964fce962ec37e0d6dcdef")
	require.ErrorIs(t, err, domain.ErrInvalidOffice)

	assert.Zero(t, env.server.TotalCalls())
}

func TestClient_GetOfficeHeadlines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	headlines, err := env.client.GetOfficeHeadlines(ctx, "BOX")
	require.NoError(t, err)
	require.Len(t, headlines, 1)
	assert.Equal(t, "Skywarn Recognition Day", *headlines[0].Title)

	headline, err := env.client.GetOfficeHeadline(ctx, "BOX", "a194056daf964fce962ec37e0d6dcdef")
	require.NoError(t, err)
	assert.Equal(t, "a194056daf964fce962ec37e0d6dcdef", *headline.HeadlineID)
	assert.False(t, *headline.IsImportant)

	assert.Equal(t, []string{
		"/offices/BOX/headlines",
		"/offices/BOX/headlines/a194056daf964fce962ec37e0d6dcdef",
	}, env.server.Requests())
}

func TestClient_GetValidZones(t *testing.T) {
	env := newTestEnv(t)

	values, ok, err := env.client.GetValidZones(context.Background())
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, domain.ValidZoneTypes(), values)
	assert.Equal(t, []string{"/zones/DEADBEEF"}, env.server.Requests())
	assert.Empty(t, env.logs.String())
}

func TestClient_GetValidForecastOffices(t *testing.T) {
	env := newTestEnv(t)

	values, ok, err := env.client.GetValidForecastOffices(context.Background())
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, []string{"AKQ", "ALY", "BGM", "BOX", "BUF", "CAE", "OKX", "PHI"}, values)
}

func TestClient_EnumerationFallbackLogsWarning(t *testing.T) {
	env := newTestEnv(t)
	env.server.Fail("valid_forecast_offices", http.StatusBadRequest)

	values, ok, err := env.client.GetValidForecastOffices(context.Background())
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Nil(t, values)
	logs := env.logs.String()
	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, "Unable to extract list of valid NWS forecast offices from the API.")
	assert.Contains(t, logs, "Falling back on hardcoded values that may be out of date.")
}

func TestClient_EnumerationFallbackForZones(t *testing.T) {
	env := newTestEnv(t)
	env.server.Fail("valid_zones", http.StatusInternalServerError)

	_, ok, err := env.client.GetValidZones(context.Background())
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Contains(t, env.logs.String(), "Unable to extract list of valid NWS zones from the API.")
}
