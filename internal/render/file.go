// Package render writes collected datasets to JSON files and prints them to
// a console.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// FilePrefix starts every dataset file name.
const FilePrefix = "nws_raw_"

// FileWriter writes each dataset to its own indented JSON file, replacing any
// previous file of the same name.
type FileWriter struct {
	dir    string
	logger *slog.Logger
}

// NewFileWriter writes into dir, creating it on first use.
func NewFileWriter(dir string, logger *slog.Logger) *FileWriter {
	return &FileWriter{dir: dir, logger: logger}
}

// Path is the file a dataset is written to.
func (w *FileWriter) Path(name string) string {
	return filepath.Join(w.dir, FilePrefix+name+".json")
}

// LoadDatasets implements collect.Loader.
func (w *FileWriter) LoadDatasets(ctx context.Context, datasets []domain.Dataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := json.MarshalIndent(ds.Value(), "", "    ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", ds.Name, err)
		}
		path := w.Path(ds.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", ds.Name, err)
		}
		w.logger.Info("wrote dataset", "dataset", ds.Name, "path", path, "records", len(ds.Records))
	}
	return nil
}
