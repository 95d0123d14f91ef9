// Command validate checks that every canned fixture still normalizes into
// useful records. Run it after refreshing fixtures with genmock: a renamed
// upstream field shows up here as a record whose fields all came back null.
//
// Usage:
//
//	go run ./cmd/validate -dir internal/nws/nwstest/testdata
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/jonboulle/clockwork"
)

// boston matches the point fixture so location distances stay realistic.
var boston = domain.GeocodeResult{Lat: 42.3601, Lon: -71.0581, MatchedAddress: "1 CITY HALL SQ, BOSTON, MA, 02201"}

type normalizer func(body domain.Object, at time.Time) []any

func many[T any](fn func(domain.Object, time.Time) []T) normalizer {
	return func(body domain.Object, at time.Time) []any {
		records := fn(body, at)
		out := make([]any, len(records))
		for i, r := range records {
			out[i] = r
		}
		return out
	}
}

func one[T any](fn func(domain.Object, time.Time) T) normalizer {
	return func(body domain.Object, at time.Time) []any { return []any{fn(body, at)} }
}

var normalizers = map[string]normalizer{
	"alerts.json":       many(domain.NormalizeAlerts),
	"alert.json":        many(domain.NormalizeAlert),
	"alert_counts.json": one(domain.NormalizeAlertCounts),
	"point.json": one(func(b domain.Object, at time.Time) domain.Location {
		return domain.NormalizeLocation(b, boston, at)
	}),
	"stations.json":     many(domain.NormalizeStations),
	"observation.json":  one(domain.NormalizeObservation),
	"observations.json": many(domain.NormalizeObservations),
	"forecast.json": one(func(b domain.Object, at time.Time) domain.Forecast {
		return domain.NormalizeForecast(b, "extended", at)
	}),
	"forecast_hourly.json": one(func(b domain.Object, at time.Time) domain.Forecast {
		return domain.NormalizeForecast(b, "hourly", at)
	}),
	"radar_station.json":  one(domain.NormalizeRadarStation),
	"radar_stations.json": many(domain.NormalizeRadarStations),
	"radar_server.json":   one(domain.NormalizeRadarServer),
	"radar_servers.json":  many(domain.NormalizeRadarServers),
	"radar_alarms.json": many(func(b domain.Object, at time.Time) []domain.RadarAlarm {
		return domain.NormalizeRadarAlarms(b, "KHPX", at)
	}),
	"radar_queue.json":       many(domain.NormalizeRadarQueue),
	"office.json":            one(domain.NormalizeOffice),
	"office_headline.json":   one(domain.NormalizeOfficeHeadline),
	"office_headlines.json":  many(domain.NormalizeOfficeHeadlines),
	"zone.json":              one(domain.NormalizeZone),
	"zones.json":             many(domain.NormalizeZones),
	"zone_forecast.json":     one(domain.NormalizeZoneForecast),
	"product_types.json":     many(domain.NormalizeProductTypes),
	"product_locations.json": many(domain.NormalizeProductLocations),
	"product.json":           one(domain.NormalizeProduct),
	"products.json":          many(domain.NormalizeProducts),
	"sigmet.json":            one(domain.NormalizeSigmet),
	"sigmets.json":           many(domain.NormalizeSigmets),
	"cwsu.json":              one(domain.NormalizeCWSU),
	"cwa.json":               one(domain.NormalizeCWA),
	"cwas.json":              many(domain.NormalizeCWAs),
	"glossary.json":          many(domain.NormalizeGlossary),
}

// enumerations are 400 responses whose detail lists the valid values.
var enumerations = []string{"enum_offices.json", "enum_zones.json"}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dir := flag.String("dir", "", "fixture directory")
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(1)
	}
	if code := run(*dir); code != 0 {
		os.Exit(code)
	}
}

func run(dir string) int {
	// Fixed clock so retrieved_at never differs between runs.
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, time.August, 19, 18, 58, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	phases := []*phase{
		checkNormalizers(dir),
		checkEnumerations(dir),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func checkNormalizers(dir string) *phase {
	p := &phase{name: "fixtures normalize"}
	files := make([]string, 0, len(normalizers))
	for f := range normalizers {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, file := range files {
		body, err := load(filepath.Join(dir, file))
		if err != nil {
			p.errorf("%s: %v", file, err)
			continue
		}
		records := normalizers[file](body, domain.Now())
		if len(records) == 0 {
			p.errorf("%s: no records", file)
			continue
		}
		empty := 0
		for _, rec := range records {
			total, null, err := countNullFields(rec)
			if err != nil {
				p.errorf("%s: %v", file, err)
				break
			}
			// retrieved_at is always set, so one non-null field means nothing was read.
			if total-null <= 1 {
				empty++
			}
		}
		if empty > 0 {
			p.errorf("%s: %d of %d records have only null fields", file, empty, len(records))
		}
		fmt.Printf("      %-24s %4d records\n", file, len(records))
	}
	return p
}

func checkEnumerations(dir string) *phase {
	p := &phase{name: "enumerations extract"}
	for _, file := range enumerations {
		body, err := load(filepath.Join(dir, file))
		if err != nil {
			p.errorf("%s: %v", file, err)
			continue
		}
		values, ok := domain.ExtractEnumeration(body)
		if !ok || len(values) == 0 {
			p.errorf("%s: no enumeration in problem detail", file)
		}
	}
	return p
}

func load(path string) (domain.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var body domain.Object
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return body, nil
}

// countNullFields reports how many top-level JSON fields rec has and how many
// of them are null.
func countNullFields(rec any) (total, null int, err error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, 0, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return 0, 0, err
	}
	for _, v := range fields {
		if v == nil {
			null++
		}
	}
	return len(fields), null, nil
}
