// Package repository stores normalized records as JSON documents grouped by
// kind. Filters match top-level fields by equality only.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// ErrNotObject is returned when a record does not encode to a JSON object.
var ErrNotObject = errors.New("record must encode to a JSON object")

// Filter maps top-level field names to the values they must equal.
type Filter map[string]any

// Document is a stored record.
type Document struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store is implemented by Memory and Postgres. Update and Delete report
// whether any record matched the filter.
type Store interface {
	Create(ctx context.Context, kind string, record any) (string, error)
	GetAll(ctx context.Context, kind string) ([]Document, error)
	FilterBy(ctx context.Context, kind string, filter Filter) ([]Document, error)
	Update(ctx context.Context, kind string, record any, filter Filter) (bool, error)
	Delete(ctx context.Context, kind string, filter Filter) (bool, error)
	Close()
}

// Decode unmarshals each document into a T.
func Decode[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Data, &v); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", d.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// encodeRecord marshals record and checks that it is a JSON object.
func encodeRecord(record any) (json.RawMessage, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrNotObject
	}
	return data, nil
}

// normalize round-trips a filter through JSON so its values compare equal to
// decoded document fields.
func (f Filter) normalize() (map[string]any, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// matches reports whether every filter field is present in data with an
// equal value. An empty filter matches everything.
func matches(data json.RawMessage, want map[string]any) bool {
	if len(want) == 0 {
		return true
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	for k, v := range want {
		got, ok := fields[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}
