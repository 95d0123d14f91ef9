package domain

import (
	"path"
	"time"
)

// Location is a geocoded point resolved to its NWS forecast grid.
type Location struct {
	RetrievedAt            time.Time          `json:"retrieved_at"`
	Address                string             `json:"address"`
	Latitude               float64            `json:"latitude"`
	Longitude              float64            `json:"longitude"`
	PointURL               *string            `json:"point_url"`
	GridID                 *string            `json:"grid_id"`
	GridX                  *int64             `json:"grid_x"`
	GridY                  *int64             `json:"grid_y"`
	ForecastOfficeURL      *string            `json:"forecast_office_url"`
	CWA                    *string            `json:"cwa"`
	ForecastURL            *string            `json:"forecast_url"`
	ForecastHourlyURL      *string            `json:"forecast_hourly_url"`
	ForecastGridDataURL    *string            `json:"forecast_grid_data_url"`
	ObservationStationsURL *string            `json:"observation_stations_url"`
	ForecastZoneURL        *string            `json:"forecast_zone_url"`
	CountyURL              *string            `json:"county_url"`
	FireWeatherZoneURL     *string            `json:"fire_weather_zone_url"`
	TimeZone               *string            `json:"time_zone"`
	RadarStation           *string            `json:"radar_station"`
	City                   *string            `json:"city"`
	State                  *string            `json:"state"`
	DistanceMeters         *float64           `json:"distance_meters"`
	DistanceMiles          *float64           `json:"distance_miles"`
	BearingDegrees         *float64           `json:"bearing_degrees"`
	Unconverted            map[string]Measure `json:"unconverted,omitempty"`
}

// NormalizeLocation reads a /points/{lat},{lon} body for a geocoded address.
// The relative location describes the nearest named place.
func NormalizeLocation(body Object, geo GeocodeResult, retrievedAt time.Time) Location {
	props := body.Object("properties")
	rel := props.Object("relativeLocation", "properties")
	conv := &converter{}
	distance := conv.to("distance", MeasureAt(rel, "distance"), UnitMeter, UnitMile)
	return Location{
		RetrievedAt:            retrievedAt,
		Address:                geo.MatchedAddress,
		Latitude:               geo.Lat,
		Longitude:              geo.Lon,
		PointURL:               body.String("id"),
		GridID:                 props.String("gridId"),
		GridX:                  props.Int("gridX"),
		GridY:                  props.Int("gridY"),
		ForecastOfficeURL:      props.String("forecastOffice"),
		CWA:                    props.String("cwa"),
		ForecastURL:            props.String("forecast"),
		ForecastHourlyURL:      props.String("forecastHourly"),
		ForecastGridDataURL:    props.String("forecastGridData"),
		ObservationStationsURL: props.String("observationStations"),
		ForecastZoneURL:        props.String("forecastZone"),
		CountyURL:              props.String("county"),
		FireWeatherZoneURL:     props.String("fireWeatherZone"),
		TimeZone:               props.String("timeZone"),
		RadarStation:           props.String("radarStation"),
		City:                   rel.String("city"),
		State:                  rel.String("state"),
		DistanceMeters:         distance[0],
		DistanceMiles:          distance[1],
		BearingDegrees:         conv.one("bearing", MeasureAt(rel, "bearing"), UnitDegreeAngle),
		Unconverted:            conv.result(),
	}
}

// Station is a surface observation station.
type Station struct {
	RetrievedAt        time.Time          `json:"retrieved_at"`
	StationID          *string            `json:"station_id"`
	Name               *string            `json:"name"`
	URL                *string            `json:"url"`
	Latitude           *float64           `json:"latitude"`
	Longitude          *float64           `json:"longitude"`
	ElevationMeters    *float64           `json:"elevation_meters"`
	ElevationFeet      *float64           `json:"elevation_feet"`
	TimeZone           *string            `json:"time_zone"`
	ForecastURL        *string            `json:"forecast_url"`
	CountyURL          *string            `json:"county_url"`
	FireWeatherZoneURL *string            `json:"fire_weather_zone_url"`
	Unconverted        map[string]Measure `json:"unconverted,omitempty"`
}

// NormalizeStation reads one station feature.
func NormalizeStation(feature Object, retrievedAt time.Time) Station {
	props := feature.Object("properties")
	conv := &converter{}
	lat, lon := feature.Coordinates()
	elevation := conv.to("elevation", MeasureAt(props, "elevation"), UnitMeter, UnitFoot)
	return Station{
		RetrievedAt:        retrievedAt,
		StationID:          props.String("stationIdentifier"),
		Name:               props.String("name"),
		URL:                feature.String("id"),
		Latitude:           lat,
		Longitude:          lon,
		ElevationMeters:    elevation[0],
		ElevationFeet:      elevation[1],
		TimeZone:           props.String("timeZone"),
		ForecastURL:        props.String("forecast"),
		CountyURL:          props.String("county"),
		FireWeatherZoneURL: props.String("fireWeatherZone"),
		Unconverted:        conv.result(),
	}
}

// NormalizeStations returns one Station per feature, nearest first as
// ordered by the API.
func NormalizeStations(body Object, retrievedAt time.Time) []Station {
	features := body.Objects("features")
	stations := make([]Station, 0, len(features))
	for _, f := range features {
		stations = append(stations, NormalizeStation(f, retrievedAt))
	}
	return stations
}

// lastSegment returns the final path element of an API URL, or nil.
func lastSegment(u *string) *string {
	if u == nil || *u == "" {
		return nil
	}
	s := path.Base(*u)
	return &s
}
