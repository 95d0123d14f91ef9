// Package domain normalizes National Weather Service (NWS) API payloads into
// flat, typed records.
//
// # Data Source
//
// Every record originates from a single GET against https://api.weather.gov.
// Most endpoints answer with GeoJSON ("features", each carrying "properties")
// or JSON-LD ("@graph"). The same logical field is often spelled differently
// across endpoints, nested at different depths, or missing entirely, so all
// traversal goes through [Object] accessors that treat any missing or
// mistyped step as absence.
//
// # NWS Data Conventions
//
// Quantities:
//
//	{"unitCode": "wmoUnit:degC", "value": 21.7}
//	A WMO (or NWS-specific) unit code paired with a nullable number.
//	Forecast periods still use the legacy pair "temperature": 72,
//	"temperatureUnit": "F".
//
// Each quantity is exposed through statically named fields for every unit
// it can be converted to (e.g. temperature_celsius and temperature_fahrenheit).
// A quantity whose unit code is not in the lookup table is not guessed at: it
// is copied verbatim into the record's "unconverted" mapping.
//
// Time format:
//
//	RFC 3339 with or without fractional seconds ("2024-08-19T18:54:00+00:00",
//	"2024-08-19T18:54:00.123Z"). Some radar diagnostics omit the zone, which
//	is read as UTC. Validity windows are ISO-8601 intervals such as
//	"2024-08-19T18:00:00+00:00/P7DT7H"; only the start is kept as a timestamp.
//	Unparseable values normalize to absent and never fail a call.
//
// Cloud layers:
//
//	METAR amount codes (SKC, CLR, FEW, SCT, BKN, OVC) are labeled via
//	[CloudCover]; forecast periods derive an opaque sky cover category from
//	their short forecast text.
//
// Enumerations:
//
//	The API rejects unknown office or zone identifiers with a problem body
//	whose parameterErrors echo the full enumeration. [ExtractEnumeration]
//	recovers that list from a deliberately invalid request. The
//	hardcoded [ValidForecastOffices] list remains authoritative for validation.
package domain
