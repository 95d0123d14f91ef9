package domain

import (
	"strconv"
	"time"
)

// CloudLayer is one reported cloud layer.
type CloudLayer struct {
	BaseMeters *float64 `json:"base_meters"`
	BaseFeet   *float64 `json:"base_feet"`
	Amount     *string  `json:"amount"`
	Cover      *string  `json:"cover"`
}

// Observation is a surface weather observation from one station.
type Observation struct {
	RetrievedAt                   time.Time          `json:"retrieved_at"`
	ObservationURL                *string            `json:"observation_url"`
	StationURL                    *string            `json:"station_url"`
	StationID                     *string            `json:"station_id"`
	ObservedAt                    *time.Time         `json:"observed_at"`
	Description                   *string            `json:"description"`
	RawMETAR                      *string            `json:"raw_metar"`
	IconURL                       *string            `json:"icon_url"`
	ElevationMeters               *float64           `json:"elevation_meters"`
	ElevationFeet                 *float64           `json:"elevation_feet"`
	TemperatureCelsius            *float64           `json:"temperature_celsius"`
	TemperatureFahrenheit         *float64           `json:"temperature_fahrenheit"`
	DewpointCelsius               *float64           `json:"dewpoint_celsius"`
	DewpointFahrenheit            *float64           `json:"dewpoint_fahrenheit"`
	WindDirectionDegrees          *float64           `json:"wind_direction_degrees"`
	WindSpeedKmh                  *float64           `json:"wind_speed_kmh"`
	WindSpeedMph                  *float64           `json:"wind_speed_mph"`
	WindGustKmh                   *float64           `json:"wind_gust_kmh"`
	WindGustMph                   *float64           `json:"wind_gust_mph"`
	BarometricPressurePascals     *float64           `json:"barometric_pressure_pascals"`
	BarometricPressureInHg        *float64           `json:"barometric_pressure_inhg"`
	SeaLevelPressurePascals       *float64           `json:"sea_level_pressure_pascals"`
	SeaLevelPressureInHg          *float64           `json:"sea_level_pressure_inhg"`
	VisibilityMeters              *float64           `json:"visibility_meters"`
	VisibilityMiles               *float64           `json:"visibility_miles"`
	MaxTemperature24hCelsius      *float64           `json:"max_temperature_last_24h_celsius"`
	MaxTemperature24hFahrenheit   *float64           `json:"max_temperature_last_24h_fahrenheit"`
	MinTemperature24hCelsius      *float64           `json:"min_temperature_last_24h_celsius"`
	MinTemperature24hFahrenheit   *float64           `json:"min_temperature_last_24h_fahrenheit"`
	PrecipitationLastHourMM       *float64           `json:"precipitation_last_hour_millimeters"`
	PrecipitationLastHourInches   *float64           `json:"precipitation_last_hour_inches"`
	PrecipitationLast3HoursMM     *float64           `json:"precipitation_last_3_hours_millimeters"`
	PrecipitationLast3HoursInches *float64           `json:"precipitation_last_3_hours_inches"`
	PrecipitationLast6HoursMM     *float64           `json:"precipitation_last_6_hours_millimeters"`
	PrecipitationLast6HoursInches *float64           `json:"precipitation_last_6_hours_inches"`
	RelativeHumidityPercent       *float64           `json:"relative_humidity_percent"`
	WindChillCelsius              *float64           `json:"wind_chill_celsius"`
	WindChillFahrenheit           *float64           `json:"wind_chill_fahrenheit"`
	HeatIndexCelsius              *float64           `json:"heat_index_celsius"`
	HeatIndexFahrenheit           *float64           `json:"heat_index_fahrenheit"`
	CloudLayers                   []CloudLayer       `json:"cloud_layers"`
	Unconverted                   map[string]Measure `json:"unconverted,omitempty"`
}

// NormalizeObservation reads one observation feature.
func NormalizeObservation(feature Object, retrievedAt time.Time) Observation {
	p := feature.Object("properties")
	conv := &converter{}
	temps := func(name, key string) []*float64 {
		return conv.to(name, MeasureAt(p, key), UnitCelsius, UnitFahrenheit)
	}
	elevation := conv.to("elevation", MeasureAt(p, "elevation"), UnitMeter, UnitFoot)
	temperature := temps("temperature", "temperature")
	dewpoint := temps("dewpoint", "dewpoint")
	maxTemp := temps("max_temperature_last_24h", "maxTemperatureLast24Hours")
	minTemp := temps("min_temperature_last_24h", "minTemperatureLast24Hours")
	windChill := temps("wind_chill", "windChill")
	heatIndex := temps("heat_index", "heatIndex")
	windSpeed := conv.to("wind_speed", MeasureAt(p, "windSpeed"), UnitKilometersPerHour, UnitMilesPerHour)
	windGust := conv.to("wind_gust", MeasureAt(p, "windGust"), UnitKilometersPerHour, UnitMilesPerHour)
	barometric := conv.to("barometric_pressure", MeasureAt(p, "barometricPressure"), UnitPascal, UnitInchOfMercury)
	seaLevel := conv.to("sea_level_pressure", MeasureAt(p, "seaLevelPressure"), UnitPascal, UnitInchOfMercury)
	visibility := conv.to("visibility", MeasureAt(p, "visibility"), UnitMeter, UnitMile)
	precip1 := conv.to("precipitation_last_hour", MeasureAt(p, "precipitationLastHour"), UnitMillimeter, UnitInch)
	precip3 := conv.to("precipitation_last_3_hours", MeasureAt(p, "precipitationLast3Hours"), UnitMillimeter, UnitInch)
	precip6 := conv.to("precipitation_last_6_hours", MeasureAt(p, "precipitationLast6Hours"), UnitMillimeter, UnitInch)

	stationURL := p.String("station")
	obs := Observation{
		RetrievedAt:                   retrievedAt,
		ObservationURL:                feature.String("id"),
		StationURL:                    stationURL,
		StationID:                     lastSegment(stationURL),
		ObservedAt:                    p.Time("timestamp"),
		Description:                   p.String("textDescription"),
		RawMETAR:                      p.String("rawMessage"),
		IconURL:                       p.String("icon"),
		ElevationMeters:               elevation[0],
		ElevationFeet:                 elevation[1],
		TemperatureCelsius:            temperature[0],
		TemperatureFahrenheit:         temperature[1],
		DewpointCelsius:               dewpoint[0],
		DewpointFahrenheit:            dewpoint[1],
		WindDirectionDegrees:          conv.one("wind_direction", MeasureAt(p, "windDirection"), UnitDegreeAngle),
		WindSpeedKmh:                  windSpeed[0],
		WindSpeedMph:                  windSpeed[1],
		WindGustKmh:                   windGust[0],
		WindGustMph:                   windGust[1],
		BarometricPressurePascals:     barometric[0],
		BarometricPressureInHg:        barometric[1],
		SeaLevelPressurePascals:       seaLevel[0],
		SeaLevelPressureInHg:          seaLevel[1],
		VisibilityMeters:              visibility[0],
		VisibilityMiles:               visibility[1],
		MaxTemperature24hCelsius:      maxTemp[0],
		MaxTemperature24hFahrenheit:   maxTemp[1],
		MinTemperature24hCelsius:      minTemp[0],
		MinTemperature24hFahrenheit:   minTemp[1],
		PrecipitationLastHourMM:       precip1[0],
		PrecipitationLastHourInches:   precip1[1],
		PrecipitationLast3HoursMM:     precip3[0],
		PrecipitationLast3HoursInches: precip3[1],
		PrecipitationLast6HoursMM:     precip6[0],
		PrecipitationLast6HoursInches: precip6[1],
		RelativeHumidityPercent:       conv.one("relative_humidity", MeasureAt(p, "relativeHumidity"), UnitPercent),
		WindChillCelsius:              windChill[0],
		WindChillFahrenheit:           windChill[1],
		HeatIndexCelsius:              heatIndex[0],
		HeatIndexFahrenheit:           heatIndex[1],
	}

	layers := p.Objects("cloudLayers")
	obs.CloudLayers = make([]CloudLayer, 0, len(layers))
	for i, l := range layers {
		base := conv.to("cloud_layer_base_"+strconv.Itoa(i), MeasureAt(l, "base"), UnitMeter, UnitFoot)
		layer := CloudLayer{BaseMeters: base[0], BaseFeet: base[1], Amount: l.String("amount")}
		if layer.Amount != nil {
			if label, ok := CloudCover(*layer.Amount); ok {
				layer.Cover = &label
			}
		}
		obs.CloudLayers = append(obs.CloudLayers, layer)
	}
	obs.Unconverted = conv.result()
	return obs
}

// NormalizeObservations returns one Observation per feature.
func NormalizeObservations(body Object, retrievedAt time.Time) []Observation {
	features := body.Objects("features")
	observations := make([]Observation, 0, len(features))
	for _, f := range features {
		observations = append(observations, NormalizeObservation(f, retrievedAt))
	}
	return observations
}
