package nwstest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return resp.StatusCode, body
}

func TestServer_Routes(t *testing.T) {
	srv := NewServer()
	base := srv.Run()
	defer srv.Close()

	tests := []struct {
		path   string
		route  string
		status int
	}{
		{"/alerts/active", "alerts", http.StatusOK},
		{"/alerts/active/count", "alert_counts", http.StatusOK},
		{"/alerts/urn:oid:2.49.0.1", "alert", http.StatusOK},
		{"/offices/DEADBEEF", "valid_forecast_offices", http.StatusBadRequest},
		{"/offices/BOX", "office", http.StatusOK},
		{"/zones/DEADBEEF", "valid_zones", http.StatusBadRequest},
		{"/zones/forecast/TXZ120", "zone", http.StatusOK},
		{"/zones/forecast/TXZ120/forecast", "zone_forecast", http.StatusOK},
		{"/stations/KBOS/observations/latest", "observation_latest", http.StatusOK},
		{"/products/types/RR2/locations/SRH", "products_by_type_and_location", http.StatusOK},
		{"/aviation/sigmets/KKCI/2024-08-18", "atsu_date_sigmets", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, _ := get(t, base+tt.path)
			assert.Equal(t, tt.status, status)
			assert.EqualValues(t, 1, srv.Calls(tt.route))
		})
	}
}

func TestServer_UnknownPath(t *testing.T) {
	srv := NewServer()
	base := srv.Run()
	defer srv.Close()

	status, body := get(t, base+"/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["title"])
	assert.Equal(t, 1, srv.TotalCalls())
}

func TestServer_FailAndReset(t *testing.T) {
	srv := NewServer()
	base := srv.Run()
	defer srv.Close()

	srv.Fail("glossary", http.StatusBadGateway)
	status, body := get(t, base+"/glossary")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "Bad Gateway", body["title"])

	srv.Reset()
	assert.Zero(t, srv.Calls("glossary"))
	status, _ = get(t, base+"/glossary")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_SetValidTimes(t *testing.T) {
	srv := NewServer()
	base := srv.Run()
	defer srv.Close()

	srv.SetValidTimes(time.Date(2024, 8, 20, 6, 0, 0, 0, time.UTC))
	_, body := get(t, base+"/gridpoints/BOX/71,90/forecast")
	props := body["properties"].(map[string]any)
	assert.Contains(t, props["validTimes"], "2024-08-20T06:00:00+00:00/")
}
