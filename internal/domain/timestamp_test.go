package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *time.Time
	}{
		{"zulu", "2024-08-19T18:54:00Z", ptr(time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC))},
		{"fractional zulu", "2024-08-19T18:54:00.123Z", ptr(time.Date(2024, 8, 19, 18, 54, 0, 123000000, time.UTC))},
		{"colon offset", "2024-08-19T14:54:00-04:00", ptr(time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC))},
		{"compact offset", "2024-08-19T14:54:00-0400", ptr(time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC))},
		{"no zone", "2024-08-19T18:54:00", ptr(time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC))},
		{"space separated", "2024-08-19 18:54:00", ptr(time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC))},
		{"date only", "2024-08-19", ptr(time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC))},
		{"interval", "2024-08-19T18:00:00+00:00/P7DT7H", ptr(time.Date(2024, 8, 19, 18, 0, 0, 0, time.UTC))},
		{"malformed", "yesterday-ish", nil},
		{"empty", "", nil},
		{"number", 1724093640.0, nil},
		{"absent", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseValidTimes(t *testing.T) {
	start, d, err := ParseValidTimes("2024-08-19T18:00:00+00:00/P7DT7H")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 8, 19, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7*24*time.Hour+7*time.Hour, d)

	_, _, err = ParseValidTimes("2024-08-19T18:00:00+00:00")
	require.Error(t, err)

	_, _, err = ParseValidTimes("garbage/P1D")
	require.Error(t, err)
}
