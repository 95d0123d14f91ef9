package domain

import "time"

// Zone is a forecast, county, fire or marine zone.
type Zone struct {
	RetrievedAt         time.Time  `json:"retrieved_at"`
	ZoneID              *string    `json:"zone_id"`
	URL                 *string    `json:"url"`
	ZoneType            *string    `json:"zone_type"`
	Name                *string    `json:"name"`
	State               *string    `json:"state"`
	ForecastOffices     []string   `json:"forecast_offices"`
	CWAs                []string   `json:"cwas"`
	TimeZones           []string   `json:"time_zones"`
	ObservationStations []string   `json:"observation_stations"`
	RadarStation        *string    `json:"radar_station"`
	EffectiveAt         *time.Time `json:"effective_at"`
	ExpiresAt           *time.Time `json:"expires_at"`
}

// NormalizeZone reads one zone feature.
func NormalizeZone(feature Object, retrievedAt time.Time) Zone {
	p := feature.Object("properties")
	url := feature.String("id")
	if url == nil {
		url = p.String("@id")
	}
	return Zone{
		RetrievedAt:         retrievedAt,
		ZoneID:              p.String("id"),
		URL:                 url,
		ZoneType:            p.String("type"),
		Name:                p.String("name"),
		State:               p.String("state"),
		ForecastOffices:     p.Strings("forecastOffices"),
		CWAs:                p.Strings("cwa"),
		TimeZones:           p.Strings("timeZone"),
		ObservationStations: p.Strings("observationStations"),
		RadarStation:        p.String("radarStation"),
		EffectiveAt:         p.Time("effectiveDate"),
		ExpiresAt:           p.Time("expirationDate"),
	}
}

// NormalizeZones returns one Zone per feature.
func NormalizeZones(body Object, retrievedAt time.Time) []Zone {
	features := body.Objects("features")
	zones := make([]Zone, 0, len(features))
	for _, f := range features {
		zones = append(zones, NormalizeZone(f, retrievedAt))
	}
	return zones
}
