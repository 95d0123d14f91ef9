package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testRetrievedAt = time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC)

func mustObject(t *testing.T, raw string) Object {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return Object(m)
}

// encodedKeys returns the top-level keys of v's JSON encoding.
func encodedKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func ptr[T any](v T) *T { return &v }
