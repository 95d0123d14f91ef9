// Package kafka publishes collected datasets to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/nws-client/internal/config"
	"github.com/couchcryptid/nws-client/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces one message per dataset, keyed by dataset name.
// It implements collect.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadDatasets publishes every dataset in a single WriteMessages call.
// Messages for the same dataset always land on the same partition.
func (w *Writer) LoadDatasets(ctx context.Context, datasets []domain.Dataset) error {
	if len(datasets) == 0 {
		return nil
	}
	collectedAt := domain.Now()
	msgs := make([]kafkago.Message, len(datasets))
	for i := range datasets {
		msg, err := serializeToMessage(datasets[i], collectedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish datasets: %w", err)
	}
	w.logger.Info("published datasets", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a dataset's value into a Kafka message.
func serializeToMessage(ds domain.Dataset, collectedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(ds.Value())
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize dataset %s: %w", ds.Name, err)
	}
	return kafkago.Message{
		Key:   []byte(ds.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "dataset", Value: []byte(ds.Name)},
			{Key: "record_count", Value: []byte(strconv.Itoa(len(ds.Records)))},
			{Key: "collected_at", Value: []byte(collectedAt.Format(time.RFC3339))},
		},
	}, nil
}
