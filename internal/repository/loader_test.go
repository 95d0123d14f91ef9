package repository

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetLoader_StoresRecordsByDataset(t *testing.T) {
	store := NewMemory()
	loader := NewDatasetLoader(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	err := loader.LoadDatasets(ctx, []domain.Dataset{
		domain.ListDataset("local_stations_data", []station{{StationID: "KBOS"}, {StationID: "KBED"}}),
		domain.SingleDataset("nearest_station", "KBOS"),
		domain.SingleDataset("valid_zones", nil),
	})
	require.NoError(t, err)

	stations, err := store.GetAll(ctx, "local_stations_data")
	require.NoError(t, err)
	got, err := Decode[station](stations)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "KBED", got[1].StationID)

	nearest, err := store.GetAll(ctx, "nearest_station")
	require.NoError(t, err)
	require.Len(t, nearest, 1)
	v, ok := Value(nearest[0])
	require.True(t, ok)
	assert.JSONEq(t, `"KBOS"`, string(v))

	zones, err := store.GetAll(ctx, "valid_zones")
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestDatasetLoader_ReplacesPreviousRun(t *testing.T) {
	store := NewMemory()
	loader := NewDatasetLoader(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, loader.LoadDatasets(ctx, []domain.Dataset{
		domain.ListDataset("zones", []station{{StationID: "A"}, {StationID: "B"}}),
	}))
	require.NoError(t, loader.LoadDatasets(ctx, []domain.Dataset{
		domain.ListDataset("zones", []station{{StationID: "C"}}),
	}))

	docs, err := store.GetAll(ctx, "zones")
	require.NoError(t, err)
	got, err := Decode[station](docs)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].StationID)
}

func TestDatasetLoader_CancelledContext(t *testing.T) {
	store := NewMemory()
	loader := NewDatasetLoader(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loader.LoadDatasets(ctx, []domain.Dataset{domain.SingleDataset("office", station{StationID: "BOX"})})
	require.ErrorIs(t, err, context.Canceled)
	docs, _ := store.GetAll(context.Background(), "office")
	assert.Empty(t, docs)
}

func TestValue_RejectsUnwrappedDocuments(t *testing.T) {
	_, ok := Value(Document{Data: json.RawMessage(`{"station_id":"KBOS"}`)})
	assert.False(t, ok)
}
