package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// DatasetLoader writes collected datasets into a Store, one kind per dataset
// name. Each load replaces the records previously stored for that dataset.
type DatasetLoader struct {
	store  Store
	logger *slog.Logger
}

// NewDatasetLoader wraps store.
func NewDatasetLoader(store Store, logger *slog.Logger) *DatasetLoader {
	return &DatasetLoader{store: store, logger: logger}
}

// LoadDatasets stores every record of every dataset. Records that are not
// JSON objects are stored as {"value": record}; a nil single record is
// skipped.
func (l *DatasetLoader) LoadDatasets(ctx context.Context, datasets []domain.Dataset) error {
	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.store.Delete(ctx, ds.Name, nil); err != nil {
			return fmt.Errorf("clear %s: %w", ds.Name, err)
		}
		stored := 0
		for _, rec := range ds.Records {
			if rec == nil {
				continue
			}
			if err := l.create(ctx, ds.Name, rec); err != nil {
				return fmt.Errorf("store %s: %w", ds.Name, err)
			}
			stored++
		}
		l.logger.Debug("stored dataset", "dataset", ds.Name, "records", stored)
	}
	return nil
}

func (l *DatasetLoader) create(ctx context.Context, kind string, rec any) error {
	_, err := l.store.Create(ctx, kind, rec)
	if errors.Is(err, ErrNotObject) {
		_, err = l.store.Create(ctx, kind, map[string]any{"value": rec})
	}
	return err
}

// Value unwraps a record stored by DatasetLoader as {"value": record}.
func Value(doc Document) (json.RawMessage, bool) {
	var wrapped struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(doc.Data, &wrapped); err != nil || wrapped.Value == nil {
		return nil, false
	}
	return wrapped.Value, true
}
