// Package nwstest provides an in-process stand-in for the NWS API and the
// Census geocoder, serving canned responses recorded from the live services.
package nwstest

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"time"

	"cloudeng.io/datetime"
)

//go:embed testdata/*.json
var cannedData embed.FS

// GeocoderPath is where the mock serves Census one-line address lookups.
const GeocoderPath = "/geocoder/locations/onelineaddress"

// UnknownAddress makes the mock geocoder report no matches when it appears
// anywhere in the requested address.
const UnknownAddress = "NOWHERE"

type route struct {
	name    string
	pattern *regexp.Regexp
	fixture string
	status  int
}

func r(name, pattern, fixture string) route {
	return route{name: name, pattern: regexp.MustCompile(pattern), fixture: fixture, status: http.StatusOK}
}

// Routes are matched in order, so more specific patterns come first.
var routes = []route{
	r("alert_counts", `^/alerts/active/count$`, "alert_counts.json"),
	r("alerts_by_area", `^/alerts/active/area/[^/]+$`, "alerts.json"),
	r("alerts_by_zone", `^/alerts/active/zone/[^/]+$`, "alerts.json"),
	r("alerts_by_region", `^/alerts/active/region/[^/]+$`, "alerts.json"),
	r("alerts", `^/alerts/active$`, "alerts.json"),
	r("alert_types", `^/alerts/types$`, "alert_types.json"),
	r("alert", `^/alerts/[^/]+$`, "alert.json"),

	r("radar_station_alarms", `^/radar/stations/[^/]+/alarms$`, "radar_alarms.json"),
	r("radar_station", `^/radar/stations/[^/]+$`, "radar_station.json"),
	r("radar_stations", `^/radar/stations$`, "radar_stations.json"),
	r("radar_server", `^/radar/servers/[^/]+$`, "radar_server.json"),
	r("radar_servers", `^/radar/servers$`, "radar_servers.json"),
	r("radar_queue", `^/radar/queues/[^/]+$`, "radar_queue.json"),

	{name: "valid_forecast_offices", pattern: regexp.MustCompile(`^/offices/DEADBEEF$`), fixture: "enum_offices.json", status: http.StatusBadRequest},
	r("office_headline", `^/offices/[^/]+/headlines/[^/]+$`, "office_headline.json"),
	r("office_headlines", `^/offices/[^/]+/headlines$`, "office_headlines.json"),
	r("office", `^/offices/[^/]+$`, "office.json"),

	{name: "valid_zones", pattern: regexp.MustCompile(`^/zones/DEADBEEF$`), fixture: "enum_zones.json", status: http.StatusBadRequest},
	r("zone_stations", `^/zones/forecast/[^/]+/stations$`, "stations.json"),
	r("zone_observations", `^/zones/forecast/[^/]+/observations$`, "observations.json"),
	r("zone_forecast", `^/zones/forecast/[^/]+/forecast$`, "zone_forecast.json"),
	r("zone", `^/zones/[^/]+/[^/]+$`, "zone.json"),
	r("zones", `^/zones/[^/]+$`, "zones.json"),

	r("points", `^/points/[^/]+$`, "point.json"),
	r("gridpoint_stations", `^/gridpoints/[^/]+/[^/]+/stations$`, "stations.json"),
	r("forecast_hourly", `^/gridpoints/[^/]+/[^/]+/forecast/hourly$`, "forecast_hourly.json"),
	r("forecast_extended", `^/gridpoints/[^/]+/[^/]+/forecast$`, "forecast.json"),
	r("observation_latest", `^/stations/[^/]+/observations/latest$`, "observation.json"),
	r("observation_at", `^/stations/[^/]+/observations/[^/]+$`, "observation.json"),
	r("observations", `^/stations/[^/]+/observations$`, "observations.json"),

	r("product_types_by_location", `^/products/locations/[^/]+/types$`, "product_types.json"),
	r("product_locations", `^/products/locations$`, "product_locations.json"),
	r("products_by_type_and_location", `^/products/types/[^/]+/locations/[^/]+$`, "products.json"),
	r("product_locations_by_type", `^/products/types/[^/]+/locations$`, "product_locations.json"),
	r("product_types", `^/products/types$`, "product_types.json"),
	r("products_by_type", `^/products/types/[^/]+$`, "products.json"),
	r("products", `^/products$`, "products.json"),
	r("product", `^/products/[^/]+$`, "product.json"),

	r("sigmet", `^/aviation/sigmets/[^/]+/[^/]+/[^/]+$`, "sigmet.json"),
	r("atsu_date_sigmets", `^/aviation/sigmets/[^/]+/[^/]+$`, "sigmets.json"),
	r("atsu_sigmets", `^/aviation/sigmets/[^/]+$`, "sigmets.json"),
	r("sigmets", `^/aviation/sigmets$`, "sigmets.json"),
	r("cwa", `^/aviation/cwsus/[^/]+/cwas/[^/]+/[^/]+$`, "cwa.json"),
	r("cwas", `^/aviation/cwsus/[^/]+/cwas$`, "cwas.json"),
	r("cwsu", `^/aviation/cwsus/[^/]+$`, "cwsu.json"),
	r("glossary", `^/glossary$`, "glossary.json"),

	r("geocode", `^`+GeocoderPath+`$`, "geocode.json"),
}

var validTimesRE = regexp.MustCompile(`"validTimes":\s*"(.*?)"`)

// Server is a mock NWS API. Requests are counted per route name; the names
// match the endpoint labels the nws client reports in its metrics.
type Server struct {
	mu         sync.Mutex
	srv        *httptest.Server
	calls      map[string]int64
	paths      []string
	failures   map[string]int
	validTimes string
	userAgent  string
}

// NewServer returns a server that is not yet listening; call Run.
func NewServer() *Server {
	return &Server{
		calls:    make(map[string]int64),
		failures: make(map[string]int),
	}
}

// Run starts the server and returns its base URL.
func (s *Server) Run() string {
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	return s.srv.URL
}

// URL is the base URL returned by Run.
func (s *Server) URL() string {
	return s.srv.URL
}

// GeocoderURL is the Census endpoint served by the mock.
func (s *Server) GeocoderURL() string {
	return s.srv.URL + GeocoderPath
}

// Close shuts the server down.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		s.srv.Close()
	}
}

// Calls returns how many requests the named route has served.
func (s *Server) Calls(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// TotalCalls counts every request, matched or not.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

// Requests returns the request URIs in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// LastUserAgent is the User-Agent of the most recent request.
func (s *Server) LastUserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

// Reset clears call counts, recorded requests and injected failures.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[string]int64)
	s.failures = make(map[string]int)
	s.paths = nil
}

// Fail makes the named route answer with status and a problem body until
// Reset is called.
func (s *Server) Fail(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = status
}

// SetValidTimes rewrites the validTimes interval of forecast responses to a
// seven day window starting at when.
func (s *Server) SetValidTimes(when time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validTimes = fmt.Sprintf(`"validTimes": "%s/%s"`, when.Format("2006-01-02T15:04:05-07:00"), datetime.AsISO8601Period(time.Hour*24*7))
}

func (s *Server) serve(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = append(s.paths, req.URL.RequestURI())
	s.userAgent = req.UserAgent()

	rt, ok := match(req.URL.Path)
	if !ok {
		data, _ := cannedData.ReadFile("testdata/not_found.json")
		writeJSON(w, http.StatusNotFound, data)
		return
	}
	s.calls[rt.name]++
	if status, failing := s.failures[rt.name]; failing {
		writeProblem(w, req, status, http.StatusText(status), "injected failure")
		return
	}

	if rt.name == "geocode" && strings.Contains(strings.ToUpper(req.URL.Query().Get("address")), UnknownAddress) {
		writeJSON(w, http.StatusOK, []byte(`{"result": {"addressMatches": []}}`))
		return
	}

	data, err := cannedData.ReadFile("testdata/" + rt.fixture)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.validTimes != "" && strings.HasPrefix(rt.name, "forecast_") {
		data = validTimesRE.ReplaceAll(data, []byte(s.validTimes))
	}
	writeJSON(w, rt.status, data)
}

func match(path string) (route, bool) {
	for _, rt := range routes {
		if rt.pattern.MatchString(path) {
			return rt, true
		}
	}
	return route{}, false
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeProblem(w http.ResponseWriter, req *http.Request, status int, title, detail string) {
	body, _ := json.Marshal(map[string]any{
		"type":     "https://api.weather.gov/problems/" + strings.ReplaceAll(title, " ", ""),
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": req.URL.Path,
	})
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Fixture returns the raw bytes of a canned response.
func Fixture(name string) []byte {
	data, err := cannedData.ReadFile("testdata/" + name)
	if err != nil {
		panic(err)
	}
	return data
}
