//go:build integration

package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/nws-client/internal/adapter/census"
	"github.com/couchcryptid/nws-client/internal/adapter/nwsapi"
	"github.com/couchcryptid/nws-client/internal/nws"
	"github.com/couchcryptid/nws-client/internal/nws/nwstest"
	"github.com/couchcryptid/nws-client/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testAddress = "1 City Hall Square, Boston, MA 02201"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("nws-client-test"))
	require.NoError(t, err, "start kafka")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// startPostgres runs a database container and returns its connection string.
func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("nws"),
		tcpostgres.WithUsername("nws"),
		tcpostgres.WithPassword("nws"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "start postgres")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

// newClient returns an nws client wired to a mock API server.
func newClient(t *testing.T) (*nws.Client, *nwstest.Server) {
	t.Helper()
	srv := nwstest.NewServer()
	base := srv.Run()
	t.Cleanup(srv.Close)

	logger := discardLogger()
	client := nws.NewClient(
		nwsapi.NewClient("nws-client-integration", 10*time.Second, logger),
		census.NewClient(srv.GeocoderURL(), "nws-client-integration", 10*time.Second, logger),
		base, logger, observability.NewMetricsForTesting(),
	)
	return client, srv
}
