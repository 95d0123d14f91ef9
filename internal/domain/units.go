package domain

// Unit is a short label for a unit of measure.
type Unit string

const (
	UnitPascal            Unit = "pa"
	UnitHectopascal       Unit = "hpa"
	UnitInchOfMercury     Unit = "inhg"
	UnitKilometersPerHour Unit = "kmph"
	UnitMilesPerHour      Unit = "mph"
	UnitMetersPerSecond   Unit = "mps"
	UnitKnot              Unit = "kt"
	UnitMeter             Unit = "m"
	UnitKilometer         Unit = "km"
	UnitFoot              Unit = "ft"
	UnitMile              Unit = "mi"
	UnitMillimeter        Unit = "mm"
	UnitInch              Unit = "in"
	UnitPercent           Unit = "pc"
	UnitDegreeAngle       Unit = "deg_ang"
	UnitCelsius           Unit = "c"
	UnitFahrenheit        Unit = "f"
	UnitSecond            Unit = "s"
	UnitWatt              Unit = "w"
	UnitKilowatt          Unit = "kw"
	UnitDecibel           Unit = "db"
	UnitDecibelMilliwatt  Unit = "dbm"
)

// unitCodes maps WMO and NWS unit codes to units.
// See https://codes.wmo.int/common/unit.
var unitCodes = map[string]Unit{
	"wmoUnit:Pa":             UnitPascal,
	"wmoUnit:hPa":            UnitHectopascal,
	"wmoUnit:km_h-1":         UnitKilometersPerHour,
	"wmoUnit:m_s-1":          UnitMetersPerSecond,
	"wmoUnit:kt":             UnitKnot,
	"wmoUnit:m":              UnitMeter,
	"wmoUnit:km":             UnitKilometer,
	"wmoUnit:mm":             UnitMillimeter,
	"wmoUnit:percent":        UnitPercent,
	"wmoUnit:degree_(angle)": UnitDegreeAngle,
	"wmoUnit:degC":           UnitCelsius,
	"wmoUnit:degF":           UnitFahrenheit,
	"wmoUnit:s":              UnitSecond,
	"nwsUnit:s":              UnitSecond,
	"wmoUnit:W":              UnitWatt,
	"wmoUnit:kW":             UnitKilowatt,
	"wmoUnit:dB":             UnitDecibel,
	"wmoUnit:dBm":            UnitDecibelMilliwatt,
	"C":                      UnitCelsius,
	"F":                      UnitFahrenheit,
}

// LookupUnit returns the unit for an API unit code.
func LookupUnit(code string) (Unit, bool) {
	u, ok := unitCodes[code]
	return u, ok
}

// cloudCover labels METAR sky cover codes.
// See https://en.wikipedia.org/wiki/Okta.
var cloudCover = map[string]string{
	"SKC": "Clear Sky",
	"CLR": "Clear Sky",
	"FEW": "Few Clouds",       // 1-2 oktas
	"SCT": "Scattered Clouds", // 3-4 oktas
	"BKN": "Broken Sky",       // 5-7 oktas
	"OVC": "Overcast",         // 8 oktas
}

// CloudCover returns the label for a METAR cloud amount code.
func CloudCover(code string) (string, bool) {
	label, ok := cloudCover[code]
	return label, ok
}
