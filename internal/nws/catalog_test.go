package nws

import (
	"context"
	"testing"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Zones(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	zone, err := env.client.GetZone(ctx, "county", "AKC013")
	require.NoError(t, err)
	assert.Equal(t, "Aleutians East", *zone.Name)
	assert.Equal(t, []string{"America/Anchorage", "America/Adak"}, zone.TimeZones)

	zones, err := env.client.GetZones(ctx, "coastal")
	require.NoError(t, err)
	assert.Len(t, zones, 2)

	stations, err := env.client.GetZoneStations(ctx, "TXZ120")
	require.NoError(t, err)
	assert.NotEmpty(t, stations)

	observations, err := env.client.GetZoneObservations(ctx, "TNZ061")
	require.NoError(t, err)
	assert.NotEmpty(t, observations)

	forecast, err := env.client.GetZoneForecast(ctx, "TXZ120")
	require.NoError(t, err)
	assert.Equal(t, "TXZ120", *forecast.ZoneID)
	assert.Len(t, forecast.Periods, 3)

	assert.Equal(t, []string{
		"/zones/county/AKC013",
		"/zones/coastal",
		"/zones/forecast/TXZ120/stations",
		"/zones/forecast/TNZ061/observations",
		"/zones/forecast/TXZ120/forecast",
	}, env.server.Requests())
}

func TestClient_InvalidZoneTypeMakesNoRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.GetZone(ctx, "lake", "AKC013")
	require.ErrorIs(t, err, domain.ErrInvalidZoneType)
	_, err = env.client.GetZones(ctx, "County")
	require.ErrorIs(t, err, domain.ErrInvalidZoneType)

	assert.Zero(t, env.server.TotalCalls())
}

func TestClient_Products(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	types, err := env.client.GetProductTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)
	_, err = env.client.GetProductTypesByLocation(ctx, "BGM")
	require.NoError(t, err)

	locations, err := env.client.GetProductLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "BGM", locations[0].LocationCode)
	assert.Nil(t, locations[1].LocationName)
	_, err = env.client.GetProductLocationsByType(ctx, "RVF")
	require.NoError(t, err)

	_, err = env.client.GetProducts(ctx)
	require.NoError(t, err)
	_, err = env.client.GetProductsByType(ctx, "RR2")
	require.NoError(t, err)
	products, err := env.client.GetProductsByTypeAndLocation(ctx, "ADA", "SRH")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Nil(t, products[0].ProductText)

	product, err := env.client.GetProduct(ctx, "5359e496-498b-40b9-bae6-0f0dcddc87a2")
	require.NoError(t, err)
	assert.Contains(t, *product.ProductText, "RR2BGM")

	assert.Equal(t, []string{
		"/products/types",
		"/products/locations/BGM/types",
		"/products/locations",
		"/products/types/RVF/locations",
		"/products",
		"/products/types/RR2",
		"/products/types/ADA/locations/SRH",
		"/products/5359e496-498b-40b9-bae6-0f0dcddc87a2",
	}, env.server.Requests())
}

func TestClient_Aviation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sigmets, err := env.client.GetSigmets(ctx)
	require.NoError(t, err)
	assert.Len(t, sigmets, 2)
	_, err = env.client.GetATSUSigmets(ctx, "KKCI")
	require.NoError(t, err)
	_, err = env.client.GetATSUSigmetsByDate(ctx, "KKCI", "2024-08-18")
	require.NoError(t, err)

	sigmet, err := env.client.GetSigmet(ctx, "KKCI", "2024-08-18", "0455")
	require.NoError(t, err)
	assert.Equal(t, "46C", *sigmet.Sequence)
	assert.Nil(t, sigmet.FIR)

	cwsu, err := env.client.GetCWSU(ctx, "ZOB")
	require.NoError(t, err)
	assert.Equal(t, "Oberlin", *cwsu.City)

	cwas, err := env.client.GetCWAs(ctx, "ZOB")
	require.NoError(t, err)
	require.Len(t, cwas, 1)

	cwa, err := env.client.GetCWA(ctx, "ZOB", "2024-08-17", 101)
	require.NoError(t, err)
	assert.EqualValues(t, 101, *cwa.Sequence)

	assert.Equal(t, []string{
		"/aviation/sigmets",
		"/aviation/sigmets/KKCI",
		"/aviation/sigmets/KKCI/2024-08-18",
		"/aviation/sigmets/KKCI/2024-08-18/0455",
		"/aviation/cwsus/ZOB",
		"/aviation/cwsus/ZOB/cwas",
		"/aviation/cwsus/ZOB/cwas/2024-08-17/101",
	}, env.server.Requests())
}

func TestClient_GetGlossary(t *testing.T) {
	env := newTestEnv(t)

	terms, err := env.client.GetGlossary(context.Background())
	require.NoError(t, err)

	require.Len(t, terms, 3)
	assert.Equal(t, "Advection", *terms[0].Term)
	assert.Nil(t, terms[2].Term)
}
