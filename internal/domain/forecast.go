package domain

import (
	"strings"
	"time"
)

// OpaqueCloudCoverage is the fraction of the sky covered by opaque clouds as
// defined at https://www.weather.gov/bgm/forecast_terms.
type OpaqueCloudCoverage int

const (
	UnknownOpaqueCloudCoverage OpaqueCloudCoverage = iota
	ClearSunny                                     // 0 to 1/8
	MostlyClearSunny                               // 1/8 to 3/8
	PartlyCloudySunny                              // 3/8 to 5/8
	MostlyCloudy                                   // 5/8 to 7/8
	Cloudy                                         // 7/8 to 8/8
)

var opaqueCloudCoverageNames = [...]string{
	UnknownOpaqueCloudCoverage: "unknown",
	ClearSunny:                 "clear",
	MostlyClearSunny:           "mostly_clear",
	PartlyCloudySunny:          "partly_cloudy",
	MostlyCloudy:               "mostly_cloudy",
	Cloudy:                     "cloudy",
}

func (c OpaqueCloudCoverage) String() string {
	if c < 0 || int(c) >= len(opaqueCloudCoverageNames) {
		return opaqueCloudCoverageNames[UnknownOpaqueCloudCoverage]
	}
	return opaqueCloudCoverageNames[c]
}

// MarshalText encodes the coverage by name.
func (c OpaqueCloudCoverage) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a coverage name. Unknown names decode as
// UnknownOpaqueCloudCoverage.
func (c *OpaqueCloudCoverage) UnmarshalText(b []byte) error {
	*c = UnknownOpaqueCloudCoverage
	for i, name := range opaqueCloudCoverageNames {
		if name == string(b) {
			*c = OpaqueCloudCoverage(i)
			break
		}
	}
	return nil
}

// skyCover maps the leading words of a short forecast to a sky cover. The
// first matching prefix wins.
var skyCover = []struct {
	prefix string
	cover  OpaqueCloudCoverage
}{
	{"mostly clear", MostlyClearSunny},
	{"mostly sunny", MostlyClearSunny},
	{"mostly cloudy", MostlyCloudy},
	{"partly cloudy", PartlyCloudySunny},
	{"partly sunny", PartlyCloudySunny},
	{"decreasing clouds", PartlyCloudySunny},
	{"increasing clouds", MostlyCloudy},
	{"clear", ClearSunny},
	{"sunny", ClearSunny},
	{"fair", ClearSunny},
	{"cloudy", Cloudy},
}

// CloudOpacityFromShortForecast derives the sky cover from a period's short
// forecast text, e.g. "Mostly Sunny then Chance Showers". A leading
// "Becoming" is ignored.
func CloudOpacityFromShortForecast(forecast string) OpaqueCloudCoverage {
	text := strings.Join(strings.Fields(strings.ToLower(forecast)), " ")
	text = strings.TrimPrefix(text, "becoming ")
	for _, sc := range skyCover {
		if strings.HasPrefix(text, sc.prefix) {
			return sc.cover
		}
	}
	return UnknownOpaqueCloudCoverage
}

// ForecastPeriod is one period of a gridpoint forecast.
type ForecastPeriod struct {
	Number                          *int64              `json:"number"`
	Name                            *string             `json:"name"`
	StartAt                         *time.Time          `json:"start_at"`
	EndAt                           *time.Time          `json:"end_at"`
	IsDaytime                       *bool               `json:"is_daytime"`
	TemperatureCelsius              *float64            `json:"temperature_celsius"`
	TemperatureFahrenheit           *float64            `json:"temperature_fahrenheit"`
	TemperatureTrend                *string             `json:"temperature_trend"`
	PrecipitationProbabilityPercent *float64            `json:"precipitation_probability_percent"`
	DewpointCelsius                 *float64            `json:"dewpoint_celsius"`
	DewpointFahrenheit              *float64            `json:"dewpoint_fahrenheit"`
	RelativeHumidityPercent         *float64            `json:"relative_humidity_percent"`
	WindSpeed                       *string             `json:"wind_speed"`
	WindDirection                   *string             `json:"wind_direction"`
	IconURL                         *string             `json:"icon_url"`
	ShortForecast                   *string             `json:"short_forecast"`
	DetailedForecast                *string             `json:"detailed_forecast"`
	CloudCoverage                   OpaqueCloudCoverage `json:"cloud_coverage"`
}

// Forecast is a gridpoint forecast, either extended (12h periods) or hourly.
type Forecast struct {
	RetrievedAt     time.Time          `json:"retrieved_at"`
	Kind            string             `json:"kind"`
	GeneratedAt     *time.Time         `json:"generated_at"`
	UpdatedAt       *time.Time         `json:"updated_at"`
	ValidFrom       *time.Time         `json:"valid_from"`
	ValidForSeconds *float64           `json:"valid_for_seconds"`
	Units           *string            `json:"units"`
	Generator       *string            `json:"forecast_generator"`
	ElevationMeters *float64           `json:"elevation_meters"`
	ElevationFeet   *float64           `json:"elevation_feet"`
	Periods         []ForecastPeriod   `json:"periods"`
	Unconverted     map[string]Measure `json:"unconverted,omitempty"`
}

// PeriodFor returns the period covering when. It reports false if none does.
func (fc Forecast) PeriodFor(when time.Time) (ForecastPeriod, bool) {
	for _, p := range fc.Periods {
		if p.StartAt == nil || p.EndAt == nil {
			continue
		}
		if !p.StartAt.After(when) && p.EndAt.After(when) {
			return p, true
		}
	}
	return ForecastPeriod{}, false
}

// NormalizeForecast reads a /gridpoints/{wfo}/{x},{y}/forecast[/hourly] body.
func NormalizeForecast(body Object, kind string, retrievedAt time.Time) Forecast {
	p := body.Object("properties")
	conv := &converter{}
	elevation := conv.to("elevation", MeasureAt(p, "elevation"), UnitMeter, UnitFoot)
	fc := Forecast{
		RetrievedAt:     retrievedAt,
		Kind:            kind,
		GeneratedAt:     p.Time("generatedAt"),
		UpdatedAt:       p.Time("updateTime"),
		Units:           p.String("units"),
		Generator:       p.String("forecastGenerator"),
		ElevationMeters: elevation[0],
		ElevationFeet:   elevation[1],
	}
	if vt := p.String("validTimes"); vt != nil {
		if start, d, err := ParseValidTimes(*vt); err == nil {
			secs := d.Seconds()
			fc.ValidFrom, fc.ValidForSeconds = &start, &secs
		}
	}

	periods := p.Objects("periods")
	fc.Periods = make([]ForecastPeriod, 0, len(periods))
	for _, period := range periods {
		fc.Periods = append(fc.Periods, normalizeForecastPeriod(period, conv))
	}
	fc.Unconverted = conv.result()
	return fc
}

func normalizeForecastPeriod(p Object, conv *converter) ForecastPeriod {
	// Temperature is either a quantity object or a bare number paired with
	// a "temperatureUnit" letter.
	temp := MeasureAt(p, "temperature")
	if temp.Value == nil {
		temp.Value = p.Float("temperature")
		if unit := p.String("temperatureUnit"); unit != nil {
			temp.UnitCode = *unit
		}
	}
	temperature := conv.to("period_temperature", temp, UnitCelsius, UnitFahrenheit)
	dewpoint := conv.to("period_dewpoint", MeasureAt(p, "dewpoint"), UnitCelsius, UnitFahrenheit)

	period := ForecastPeriod{
		Number:                          p.Int("number"),
		Name:                            p.String("name"),
		StartAt:                         p.Time("startTime"),
		EndAt:                           p.Time("endTime"),
		IsDaytime:                       p.Bool("isDaytime"),
		TemperatureCelsius:              temperature[0],
		TemperatureFahrenheit:           temperature[1],
		TemperatureTrend:                p.String("temperatureTrend"),
		PrecipitationProbabilityPercent: conv.one("period_precipitation_probability", MeasureAt(p, "probabilityOfPrecipitation"), UnitPercent),
		DewpointCelsius:                 dewpoint[0],
		DewpointFahrenheit:              dewpoint[1],
		RelativeHumidityPercent:         conv.one("period_relative_humidity", MeasureAt(p, "relativeHumidity"), UnitPercent),
		WindSpeed:                       p.String("windSpeed"),
		WindDirection:                   p.String("windDirection"),
		IconURL:                         p.String("icon"),
		ShortForecast:                   p.String("shortForecast"),
		DetailedForecast:                p.String("detailedForecast"),
	}
	if period.ShortForecast != nil {
		period.CloudCoverage = CloudOpacityFromShortForecast(*period.ShortForecast)
	}
	return period
}

// ZoneForecastPeriod is one narrative period of a zone forecast.
type ZoneForecastPeriod struct {
	Number           *int64  `json:"number"`
	Name             *string `json:"name"`
	DetailedForecast *string `json:"detailed_forecast"`
}

// ZoneForecast is the text forecast for a public forecast zone.
type ZoneForecast struct {
	RetrievedAt time.Time            `json:"retrieved_at"`
	ZoneURL     *string              `json:"zone_url"`
	ZoneID      *string              `json:"zone_id"`
	UpdatedAt   *time.Time           `json:"updated_at"`
	Periods     []ZoneForecastPeriod `json:"periods"`
}

// NormalizeZoneForecast reads a /zones/forecast/{id}/forecast body.
func NormalizeZoneForecast(body Object, retrievedAt time.Time) ZoneForecast {
	p := body.Object("properties")
	zoneURL := p.String("zone")
	zf := ZoneForecast{
		RetrievedAt: retrievedAt,
		ZoneURL:     zoneURL,
		ZoneID:      lastSegment(zoneURL),
		UpdatedAt:   p.Time("updated"),
	}
	periods := p.Objects("periods")
	zf.Periods = make([]ZoneForecastPeriod, 0, len(periods))
	for _, period := range periods {
		zf.Periods = append(zf.Periods, ZoneForecastPeriod{
			Number:           period.Int("number"),
			Name:             period.String("name"),
			DetailedForecast: period.String("detailedForecast"),
		})
	}
	return zf
}
