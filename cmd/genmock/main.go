// Command genmock records live NWS API and Census geocoder responses as the
// canned fixtures served by the nwstest mock server.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out internal/nws/nwstest/testdata \
//	  -user-agent "nws-client (ops@example.com)" \
//	  [-only forecast.json,point.json]
//
// Error fixtures (enum_offices.json, enum_zones.json, not_found.json) are
// recorded from their 400 and 404 responses like any other fixture. Review
// the diff before committing: live data drifts and tests pin fixture values.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/nws-client/internal/adapter/census"
	"github.com/couchcryptid/nws-client/internal/adapter/nwsapi"
)

const apiBase = "https://api.weather.gov"

type fixture struct {
	file string
	path string
}

// fixtures maps every canned response to the request that produced it.
var fixtures = []fixture{
	{"alerts.json", "/alerts/active/area/FL"},
	{"alert.json", "/alerts/urn:oid:2.49.0.1.840.0.9d4e.002.1"},
	{"alert_counts.json", "/alerts/active/count"},
	{"alert_types.json", "/alerts/types"},
	{"point.json", "/points/42.3601,-71.0581"},
	{"stations.json", "/gridpoints/BOX/71,90/stations"},
	{"observation.json", "/stations/KBOS/observations/latest"},
	{"observations.json", "/stations/KBOS/observations"},
	{"forecast.json", "/gridpoints/BOX/71,90/forecast"},
	{"forecast_hourly.json", "/gridpoints/BOX/71,90/forecast/hourly"},
	{"radar_station.json", "/radar/stations/KMVX"},
	{"radar_stations.json", "/radar/stations"},
	{"radar_server.json", "/radar/servers/ldm2"},
	{"radar_servers.json", "/radar/servers"},
	{"radar_alarms.json", "/radar/stations/KHPX/alarms"},
	{"radar_queue.json", "/radar/queues/rds?station=KBOX"},
	{"office.json", "/offices/BOX"},
	{"office_headlines.json", "/offices/BOX/headlines"},
	{"office_headline.json", "/offices/BOX/headlines/a194056daf964fce962ec37e0d6dcdef"},
	{"enum_offices.json", "/offices/DEADBEEF"},
	{"enum_zones.json", "/zones/DEADBEEF"},
	{"not_found.json", "/zones/forecast/XXZ999"},
	{"zone.json", "/zones/county/AKC013"},
	{"zones.json", "/zones/coastal"},
	{"zone_forecast.json", "/zones/forecast/TXZ120/forecast"},
	{"product_types.json", "/products/types"},
	{"product_locations.json", "/products/locations"},
	{"products.json", "/products/types/RR2"},
	{"product.json", "/products/5359e496-498b-40b9-bae6-0f0dcddc87a2"},
	{"sigmets.json", "/aviation/sigmets/KKCI"},
	{"sigmet.json", "/aviation/sigmets/KKCI/2024-08-18/0455"},
	{"cwsu.json", "/aviation/cwsus/ZOB"},
	{"cwas.json", "/aviation/cwsus/ZOB/cwas"},
	{"cwa.json", "/aviation/cwsus/ZOB/cwas/2024-08-17/101"},
	{"glossary.json", "/glossary"},
}

const geocodeFixture = "geocode.json"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "fixture directory to write")
	userAgent := flag.String("user-agent", "", "User-Agent identifying the caller, required by the NWS API")
	only := flag.String("only", "", "comma-separated fixture files to refresh (default all)")
	address := flag.String("address", "1 City Hall Square, Boston, MA 02201", "address for the geocoder fixture")
	flag.Parse()

	if *out == "" || *userAgent == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -out, -user-agent")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	want := map[string]bool{}
	for _, f := range strings.Split(*only, ",") {
		if f = strings.TrimSpace(f); f != "" {
			want[f] = true
		}
	}
	selected := func(file string) bool { return len(want) == 0 || want[file] }

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := nwsapi.NewClient(*userAgent, 30*time.Second, logger)

	written := 0
	for _, f := range fixtures {
		if !selected(f.file) {
			continue
		}
		resp, err := client.Fetch(ctx, apiBase+f.path)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", f.file, err)
		}
		if err := writeJSON(filepath.Join(*out, f.file), resp.Body); err != nil {
			return fmt.Errorf("writing %s: %w", f.file, err)
		}
		log.Printf("%s: status %d, %d features", f.file, resp.StatusCode, len(resp.Body.List("features")))
		written++
	}

	if selected(geocodeFixture) {
		if err := recordGeocode(ctx, *out, *userAgent, *address); err != nil {
			return err
		}
		written++
	}

	log.Printf("wrote %d fixtures to %s", written, *out)
	return nil
}

// recordGeocode stores the raw Census response; the census client only
// exposes the parsed match.
func recordGeocode(ctx context.Context, dir, userAgent, address string) error {
	q := url.Values{}
	q.Set("address", address)
	q.Set("benchmark", census.Benchmark)
	q.Set("format", "json")

	client := nwsapi.NewClient(userAgent, 30*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	resp, err := client.Fetch(ctx, census.DefaultURL+"?"+q.Encode())
	if err != nil {
		return fmt.Errorf("geocoding %q: %w", address, err)
	}
	if err := writeJSON(filepath.Join(dir, geocodeFixture), resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", geocodeFixture, err)
	}
	log.Printf("%s: status %d", geocodeFixture, resp.StatusCode)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
