package domain

type dimension int

const (
	dimPressure dimension = iota + 1
	dimSpeed
	dimLength
	dimRatio
	dimAngle
	dimTemperature
	dimDuration
	dimPower
	dimGain
	dimSignal
)

// scale expresses a unit as a multiple of its dimension's base unit.
type scale struct {
	dim    dimension
	factor float64
}

var scales = map[Unit]scale{
	UnitPascal:            {dimPressure, 1},
	UnitHectopascal:       {dimPressure, 100},
	UnitInchOfMercury:     {dimPressure, 3386.389},
	UnitMetersPerSecond:   {dimSpeed, 1},
	UnitKilometersPerHour: {dimSpeed, 1000.0 / 3600.0},
	UnitMilesPerHour:      {dimSpeed, 0.44704},
	UnitKnot:              {dimSpeed, 1852.0 / 3600.0},
	UnitMeter:             {dimLength, 1},
	UnitKilometer:         {dimLength, 1000},
	UnitFoot:              {dimLength, 0.3048},
	UnitMile:              {dimLength, 1609.344},
	UnitMillimeter:        {dimLength, 0.001},
	UnitInch:              {dimLength, 0.0254},
	UnitPercent:           {dimRatio, 1},
	UnitDegreeAngle:       {dimAngle, 1},
	UnitCelsius:           {dimTemperature, 1},
	UnitFahrenheit:        {dimTemperature, 1},
	UnitSecond:            {dimDuration, 1},
	UnitWatt:              {dimPower, 1},
	UnitKilowatt:          {dimPower, 1000},
	UnitDecibel:           {dimGain, 1},
	UnitDecibelMilliwatt:  {dimSignal, 1},
}

// Convert expresses value, measured in from, in unit to. It reports false if
// either unit is unknown or the units measure different quantities.
func Convert(value float64, from, to Unit) (float64, bool) {
	src, okFrom := scales[from]
	dst, okTo := scales[to]
	if !okFrom || !okTo || src.dim != dst.dim {
		return 0, false
	}
	if from == to {
		return value, true
	}
	if src.dim == dimTemperature {
		if from == UnitCelsius {
			return value*9/5 + 32, true
		}
		return (value - 32) * 5 / 9, true
	}
	return value * src.factor / dst.factor, true
}

// Measure is a unit-coded quantity as reported by the API.
type Measure struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unit_code"`
}

// MeasureAt reads the quantity object ({"unitCode", "value"}) at path.
func MeasureAt(o Object, path ...string) Measure {
	q := o.Object(path...)
	if q == nil {
		return Measure{}
	}
	m := Measure{Value: q.Float("value")}
	if code := q.String("unitCode"); code != nil {
		m.UnitCode = *code
	}
	return m
}

// In returns the measure's value in unit target, or nil when the value is
// absent or the unit code cannot be converted to target.
func (m Measure) In(target Unit) *float64 {
	if m.Value == nil {
		return nil
	}
	from, ok := LookupUnit(m.UnitCode)
	if !ok {
		return nil
	}
	v, ok := Convert(*m.Value, from, target)
	if !ok {
		return nil
	}
	return &v
}

// converter projects measures onto fixed target units and collects the ones
// it could not convert.
type converter struct {
	unconverted map[string]Measure
}

// to returns m expressed in each of units. When m carries a value but none of
// the conversions succeed, m is recorded under name as unconverted.
func (c *converter) to(name string, m Measure, units ...Unit) []*float64 {
	out := make([]*float64, len(units))
	if m.Value == nil {
		return out
	}
	converted := false
	for i, u := range units {
		out[i] = m.In(u)
		converted = converted || out[i] != nil
	}
	if !converted {
		if c.unconverted == nil {
			c.unconverted = make(map[string]Measure)
		}
		c.unconverted[name] = m
	}
	return out
}

// one is to for a single target unit.
func (c *converter) one(name string, m Measure, unit Unit) *float64 {
	return c.to(name, m, unit)[0]
}

func (c *converter) result() map[string]Measure {
	return c.unconverted
}
