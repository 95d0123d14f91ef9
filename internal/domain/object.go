package domain

import (
	"math"
	"sort"
	"time"
)

// Object is a decoded JSON object. Accessors walk a key path and short-circuit
// to absence on any missing key or non-object intermediate value.
type Object map[string]any

// AsObject returns v as an Object, or nil if v is not a JSON object.
func AsObject(v any) Object {
	switch o := v.(type) {
	case Object:
		return o
	case map[string]any:
		return Object(o)
	}
	return nil
}

// Get returns the raw value at path, or nil.
func (o Object) Get(path ...string) any {
	var cur any = o
	for _, key := range path {
		obj := AsObject(cur)
		if obj == nil {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

// Has reports whether path resolves to a non-null value.
func (o Object) Has(path ...string) bool {
	return o.Get(path...) != nil
}

// Object returns the object at path, or nil if it is absent or not an object.
func (o Object) Object(path ...string) Object {
	return AsObject(o.Get(path...))
}

// String returns the string at path, or nil.
func (o Object) String(path ...string) *string {
	s, ok := o.Get(path...).(string)
	if !ok {
		return nil
	}
	return &s
}

// Float returns the number at path, or nil. A quantity object
// ({"unitCode": ..., "value": n}) is unwrapped to its value.
func (o Object) Float(path ...string) *float64 {
	v := o.Get(path...)
	if q := AsObject(v); q != nil {
		v = q["value"]
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

// Int returns the integral number at path, or nil. Fractional values are absent.
func (o Object) Int(path ...string) *int64 {
	f := o.Float(path...)
	if f == nil || *f != math.Trunc(*f) {
		return nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if *f >= math.MaxInt64 || *f < math.MinInt64 {
		return nil
	}
	n := int64(*f)
	return &n
}

// Bool returns the boolean at path, or nil.
func (o Object) Bool(path ...string) *bool {
	b, ok := o.Get(path...).(bool)
	if !ok {
		return nil
	}
	return &b
}

// Time parses the timestamp at path. See [ParseTimestamp].
func (o Object) Time(path ...string) *time.Time {
	return ParseTimestamp(o.Get(path...))
}

// List returns the array at path, or nil.
func (o Object) List(path ...string) []any {
	l, _ := o.Get(path...).([]any)
	return l
}

// Objects returns the object elements of the array at path. Non-object
// elements are skipped.
func (o Object) Objects(path ...string) []Object {
	raw := o.List(path...)
	out := make([]Object, 0, len(raw))
	for _, v := range raw {
		if obj := AsObject(v); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// Strings returns the string elements of the array at path, or nil if the
// array is absent. A lone string is returned as a one-element list.
func (o Object) Strings(path ...string) []string {
	v := o.Get(path...)
	if s, ok := v.(string); ok {
		return []string{s}
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Counts returns the object at path as a string-to-integer mapping, or nil.
// Non-integral entries are dropped.
func (o Object) Counts(path ...string) map[string]int64 {
	src := o.Object(path...)
	if src == nil {
		return nil
	}
	out := make(map[string]int64, len(src))
	for k := range src {
		if n := src.Int(k); n != nil {
			out[k] = *n
		}
	}
	return out
}

// Flags returns the object at path as a string-to-bool mapping, or nil.
func (o Object) Flags(path ...string) map[string]bool {
	src := o.Object(path...)
	if src == nil {
		return nil
	}
	out := make(map[string]bool, len(src))
	for k := range src {
		if b := src.Bool(k); b != nil {
			out[k] = *b
		}
	}
	return out
}

// Keys returns the object's keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Coordinates returns the latitude and longitude of a GeoJSON point geometry.
// GeoJSON orders positions as [longitude, latitude].
func (o Object) Coordinates() (lat, lon *float64) {
	pos := o.List("geometry", "coordinates")
	if len(pos) < 2 {
		return nil, nil
	}
	x, okX := pos[0].(float64)
	y, okY := pos[1].(float64)
	if !okX || !okY {
		return nil, nil
	}
	return &y, &x
}
