package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOffice(t *testing.T) {
	require.NoError(t, ValidateOffice("BOX"))
	require.NoError(t, ValidateOffice("ONP"))

	err := ValidateOffice("XYZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOffice))

	var invalid *InvalidOfficeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "XYZ", invalid.Office)
	for _, office := range ValidForecastOffices() {
		assert.Contains(t, err.Error(), office)
	}

	assert.Error(t, ValidateOffice("box"), "identifiers are case sensitive")
}

func TestValidateZoneType(t *testing.T) {
	require.NoError(t, ValidateZoneType("coastal"))
	err := ValidateZoneType("galactic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidZoneType))
	assert.False(t, errors.Is(err, ErrInvalidOffice))
	assert.Contains(t, err.Error(), "county")
}

func TestValidLists_ReturnCopies(t *testing.T) {
	offices := ValidForecastOffices()
	require.Contains(t, offices, "BOX")
	for i := range offices {
		offices[i] = "XYZ"
	}
	require.NoError(t, ValidateOffice("BOX"))
	require.Error(t, ValidateOffice("XYZ"))
	assert.Equal(t, "BOX", ValidForecastOffices()[3])

	zones := ValidZoneTypes()
	zones[0] = "galactic"
	require.Error(t, ValidateZoneType("galactic"))
	require.NoError(t, ValidateZoneType("land"))
	assert.Equal(t, "land", ValidZoneTypes()[0])
}

func TestNormalizeOffice(t *testing.T) {
	body := mustObject(t, `{
		"@type": "GovernmentOrganization",
		"id": "BOX",
		"name": "Boston/Norton, MA",
		"address": {"streetAddress": "46 Commerce Way", "addressLocality": "Norton", "addressRegion": "MA", "postalCode": "02766-3303"},
		"telephone": "+1-508-622-3250",
		"faxNumber": "+1-508-622-3275",
		"email": "w-box.webmaster@noaa.gov",
		"sameAs": "http://www.weather.gov/box",
		"nwsRegion": "er",
		"parentOrganization": "https://api.weather.gov/offices/ERH",
		"responsibleCounties": ["https://api.weather.gov/zones/county/CTC003"],
		"responsibleForecastZones": ["https://api.weather.gov/zones/forecast/CTZ002"],
		"responsibleFireZones": ["https://api.weather.gov/zones/fire/CTZ002"],
		"approvedObservationStations": ["https://api.weather.gov/stations/KBOS"]
	}`)

	office := NormalizeOffice(body, testRetrievedAt)
	assert.Equal(t, "BOX", *office.OfficeID)
	assert.Equal(t, "Norton", *office.City)
	assert.Equal(t, "MA", *office.State)
	assert.Equal(t, "02766-3303", *office.ZipCode)
	assert.Equal(t, "er", *office.NWSRegion)
	assert.Equal(t, []string{"https://api.weather.gov/stations/KBOS"}, office.ObservationStations)

	empty := NormalizeOffice(Object{}, testRetrievedAt)
	assert.Nil(t, empty.City)
	assert.Nil(t, empty.Counties)
}

func TestNormalizeOfficeHeadlines(t *testing.T) {
	body := mustObject(t, `{"@graph": [
		{"id": "https://api.weather.gov/offices/BOX/headlines/a1", "name": "a1", "title": "Heat Safety", "issuanceTime": "2024-08-18T12:00:00+00:00", "link": "https://weather.gov/box/heat", "content": "<p>Stay cool</p>", "summary": "Stay cool", "office": "https://api.weather.gov/offices/BOX", "important": true},
		{"id": "https://api.weather.gov/offices/BOX/headlines/b2", "title": "Skywarn", "important": false}
	]}`)

	headlines := NormalizeOfficeHeadlines(body, testRetrievedAt)
	require.Len(t, headlines, 2)
	assert.Equal(t, "Heat Safety", *headlines[0].Title)
	assert.True(t, *headlines[0].IsImportant)
	assert.True(t, headlines[0].IssuedAt.Equal(time.Date(2024, 8, 18, 12, 0, 0, 0, time.UTC)))
	assert.False(t, *headlines[1].IsImportant)
	assert.Nil(t, headlines[1].Content)
	for _, h := range headlines {
		assert.Equal(t, testRetrievedAt, h.RetrievedAt)
	}
}
