package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZones(t *testing.T) {
	body := mustObject(t, `{"features": [{
		"id": "https://api.weather.gov/zones/forecast/TNZ061",
		"properties": {
			"id": "TNZ061",
			"type": "public",
			"name": "Knox",
			"state": "TN",
			"forecastOffices": ["https://api.weather.gov/offices/MRX"],
			"cwa": ["MRX"],
			"timeZone": "America/New_York",
			"observationStations": [],
			"effectiveDate": "2024-03-05T18:00:00+00:00",
			"expirationDate": "2200-01-01T00:00:00+00:00"
		}
	}]}`)

	zones := NormalizeZones(body, testRetrievedAt)
	require.Len(t, zones, 1)
	z := zones[0]
	assert.Equal(t, "TNZ061", *z.ZoneID)
	assert.Equal(t, "https://api.weather.gov/zones/forecast/TNZ061", *z.URL)
	assert.Equal(t, []string{"MRX"}, z.CWAs)
	assert.Equal(t, []string{"America/New_York"}, z.TimeZones)
	assert.NotNil(t, z.ObservationStations)
	assert.Empty(t, z.ObservationStations)
	assert.Nil(t, z.RadarStation)
	require.NotNil(t, z.ExpiresAt)
	assert.Equal(t, 2200, z.ExpiresAt.Year())
}

func TestNormalizeProducts(t *testing.T) {
	types := NormalizeProductTypes(mustObject(t, `{"@graph": [{"productCode": "AFD", "productName": "Area Forecast Discussion"}]}`), testRetrievedAt)
	require.Len(t, types, 1)
	assert.Equal(t, "AFD", *types[0].ProductCode)

	locs := NormalizeProductLocations(mustObject(t, `{"locations": {"TOP": "Topeka", "ABQ": "Albuquerque", "ZZZ": null}}`), testRetrievedAt)
	require.Len(t, locs, 3)
	assert.Equal(t, "ABQ", locs[0].LocationCode)
	assert.Equal(t, "Albuquerque", *locs[0].LocationName)
	assert.Equal(t, "ZZZ", locs[2].LocationCode)
	assert.Nil(t, locs[2].LocationName)

	products := NormalizeProducts(mustObject(t, `{"@graph": [{
		"@id": "https://api.weather.gov/products/3b6c",
		"id": "3b6c",
		"wmoCollectiveId": "FXUS61",
		"issuingOffice": "KBOX",
		"issuanceTime": "2024-08-19T18:00:00+00:00",
		"productCode": "AFD",
		"productName": "Area Forecast Discussion"
	}]}`), testRetrievedAt)
	require.Len(t, products, 1)
	assert.Equal(t, "3b6c", *products[0].ProductID)
	assert.Nil(t, products[0].ProductText)

	single := NormalizeProduct(mustObject(t, `{"id": "3b6c", "productText": "000\nFXUS61 KBOX"}`), testRetrievedAt)
	assert.Equal(t, "000\nFXUS61 KBOX", *single.ProductText)
}

func TestNormalizeAviation(t *testing.T) {
	sigmets := NormalizeSigmets(mustObject(t, `{"features": [
		{"id": "https://api.weather.gov/aviation/sigmets/KKCI/2024-08-19/1855", "properties": {"issueTime": "2024-08-19T18:55:00+00:00", "fir": null, "atsu": "KKCI", "sequence": "19C", "phenomenon": "CONVECTIVE"}},
		{"properties": {"id": "https://api.weather.gov/aviation/sigmets/KKCI/2024-08-19/1955", "atsu": "KKCI"}}
	]}`), testRetrievedAt)
	require.Len(t, sigmets, 2)
	assert.Equal(t, "19C", *sigmets[0].Sequence)
	assert.Nil(t, sigmets[0].FIR)
	assert.Contains(t, *sigmets[0].URL, "1855")
	assert.Contains(t, *sigmets[1].URL, "1955")

	cwsu := NormalizeCWSU(mustObject(t, `{"id": "ZOB", "name": "Cleveland Center Weather Service Unit", "city": "Oberlin", "state": "OH", "nwsRegion": "er"}`), testRetrievedAt)
	assert.Equal(t, "ZOB", *cwsu.CWSUID)
	assert.Equal(t, "Oberlin", *cwsu.City)
	assert.Nil(t, cwsu.Fax)

	cwas := NormalizeCWAs(mustObject(t, `{"features": [{"properties": {"id": "https://api.weather.gov/aviation/cws/ZOB/cwas/2024-08-19/101", "cwsu": "ZOB", "sequence": 101, "observedProperty": "THUNDERSTORMS", "text": "ZOB CWA 101"}}]}`), testRetrievedAt)
	require.Len(t, cwas, 1)
	assert.Equal(t, int64(101), *cwas[0].Sequence)
	assert.Equal(t, "THUNDERSTORMS", *cwas[0].ObservedProperty)
}

func TestNormalizeGlossary(t *testing.T) {
	terms := NormalizeGlossary(mustObject(t, `{"glossary": [
		{"term": "Advisory", "definition": "<p>Highlights special weather conditions.</p>"},
		{"term": null, "definition": null}
	]}`), testRetrievedAt)
	require.Len(t, terms, 2)
	assert.Equal(t, "Advisory", *terms[0].Term)
	assert.Nil(t, terms[1].Term)

	assert.Empty(t, NormalizeGlossary(Object{}, testRetrievedAt))
}

func TestDatasetValue(t *testing.T) {
	list := ListDataset("zones", []Zone{{}, {}})
	assert.False(t, list.Single)
	assert.Len(t, list.Value(), 2)

	single := SingleDataset("office", Office{})
	assert.IsType(t, Office{}, single.Value())

	assert.Equal(t, []any{}, Dataset{Name: "empty"}.Value())
	assert.Nil(t, Dataset{Name: "missing", Single: true}.Value())
}
