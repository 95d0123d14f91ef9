package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Sink names accepted in SINKS.
const (
	SinkFile     = "file"
	SinkConsole  = "console"
	SinkKafka    = "kafka"
	SinkPostgres = "postgres"
)

// Config holds all client settings, populated from environment variables.
type Config struct {
	NWSAPIURL    string
	NWSUserAgent string
	NWSTimeout   time.Duration
	NWSCacheTTL  time.Duration
	NWSCacheSize int

	CensusGeocoderURL string
	CensusCacheSize   int

	Address       string
	OutputDir     string
	Sinks         []string
	PrintDatasets []string

	KafkaBrokers []string
	KafkaTopic   string
	DatabaseURL  string

	HTTPAddr        string
	CollectInterval time.Duration
	ShutdownTimeout time.Duration

	LogLevel      string
	LogFormat     string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory seeds variables that are not
// already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}
	nwsTimeout, err := parseDuration("NWS_TIMEOUT", "10s", false)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("NWS_CACHE_TTL", "5m", true)
	if err != nil {
		return nil, err
	}
	interval, err := parseDuration("COLLECT_INTERVAL", "15m", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NWSAPIURL:    strings.TrimRight(sharedcfg.EnvOrDefault("NWS_API_URL", "https://api.weather.gov"), "/"),
		NWSUserAgent: sharedcfg.EnvOrDefault("NWS_USER_AGENT", "nws-client (github.com/couchcryptid/nws-client)"),
		NWSTimeout:   nwsTimeout,
		NWSCacheTTL:  cacheTTL,
		NWSCacheSize: parsePositiveInt("NWS_CACHE_SIZE", 512),

		CensusGeocoderURL: sharedcfg.EnvOrDefault("CENSUS_GEOCODER_URL", "https://geocoding.geo.census.gov/geocoder/locations/onelineaddress"),
		CensusCacheSize:   parsePositiveInt("CENSUS_CACHE_SIZE", 256),

		Address:       sharedcfg.EnvOrDefault("NWS_ADDRESS", "1 City Hall Square, Boston, MA 02201"),
		OutputDir:     expandHome(sharedcfg.EnvOrDefault("OUTPUT_DIR", "~/nws_data")),
		Sinks:         parseList(sharedcfg.EnvOrDefault("SINKS", SinkFile)),
		PrintDatasets: parseList(sharedcfg.EnvOrDefault("PRINT_DATASETS", "zone,zone_forecast")),

		KafkaBrokers: sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "nws-datasets"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		CollectInterval: interval,
		ShutdownTimeout: shutdownTimeout,

		LogLevel:      sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  parsePositiveInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: parsePositiveInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: parsePositiveInt("LOG_MAX_AGE_DAYS", 28),
	}

	if cfg.NWSUserAgent == "" {
		return nil, errors.New("NWS_USER_AGENT is required")
	}
	if cfg.Address == "" {
		return nil, errors.New("NWS_ADDRESS is required")
	}
	if len(cfg.Sinks) == 0 {
		return nil, errors.New("SINKS must name at least one sink")
	}
	for _, s := range cfg.Sinks {
		switch s {
		case SinkFile, SinkConsole:
		case SinkKafka:
			if len(cfg.KafkaBrokers) == 0 {
				return nil, errors.New("KAFKA_BROKERS is required for the kafka sink")
			}
			if cfg.KafkaTopic == "" {
				return nil, errors.New("KAFKA_TOPIC is required for the kafka sink")
			}
		case SinkPostgres:
			if cfg.DatabaseURL == "" {
				return nil, errors.New("DATABASE_URL is required for the postgres sink")
			}
		default:
			return nil, fmt.Errorf("SINKS: unknown sink %q", s)
		}
	}

	return cfg, nil
}

// HasSink reports whether name is among the configured sinks.
func (c *Config) HasSink(name string) bool {
	for _, s := range c.Sinks {
		if s == name {
			return true
		}
	}
	return false
}

func parseDuration(key, def string, allowZero bool) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
