// Package config loads server configuration from defaults, an optional YAML
// file, an optional .env file and TINKER_* environment variables, in that
// order of precedence from lowest to highest.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tinkertools/tinker-api/internal/errors"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "TINKER_"

// Storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the API server and CLI
type Config struct {
	Server     ServerConfig     `yaml:"server" envPrefix:"SERVER_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Storage    StorageConfig    `yaml:"storage" envPrefix:"STORAGE_"`
	Redis      RedisConfig      `yaml:"redis" envPrefix:"REDIS_"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" envPrefix:"TELEMETRY_"`
	Evaluation EvaluationConfig `yaml:"evaluation" envPrefix:"EVALUATION_"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// LogConfig configures the default slog handler
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // text or json
}

// StorageConfig selects and configures the item store
type StorageConfig struct {
	Driver      string `yaml:"driver" env:"DRIVER"`
	SQLitePath  string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

// RedisConfig configures the item cache and the profile store. Addrs with
// more than one entry selects cluster mode unless MasterName is set.
type RedisConfig struct {
	Enabled    bool          `yaml:"enabled" env:"ENABLED"`
	Addrs      []string      `yaml:"addrs" env:"ADDRS" envSeparator:","`
	MasterName string        `yaml:"master_name" env:"MASTER_NAME"`
	Password   string        `yaml:"password" env:"PASSWORD"`
	DB         int           `yaml:"db" env:"DB"`
	UseTLS     bool          `yaml:"use_tls" env:"USE_TLS"`
	CacheTTL   time.Duration `yaml:"cache_ttl" env:"CACHE_TTL"`
}

// TelemetryConfig configures trace export. Tracing is off without an endpoint.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
	Insecure    bool   `yaml:"insecure" env:"INSECURE"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// EvaluationConfig tunes batch evaluation
type EvaluationConfig struct {
	Parallelism int `yaml:"parallelism" env:"PARALLELISM"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: "tinker.db",
		},
		Redis: RedisConfig{
			Addrs:    []string{"localhost:6379"},
			CacheTTL: 15 * time.Minute,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "tinker-api",
		},
		Evaluation: EvaluationConfig{
			Parallelism: 8,
		},
	}
}

// Load builds the configuration. A missing YAML or .env file is not an
// error; empty paths skip that layer.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		vb.Fieldf("log.format", "must be text or json, got %q", c.Log.Format)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			vb.RequiredField("storage.sqlite_path")
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			vb.RequiredField("storage.postgres_dsn")
		}
	default:
		vb.Fieldf("storage.driver", "must be %s or %s, got %q", DriverSQLite, DriverPostgres, c.Storage.Driver)
	}

	if c.Redis.Enabled {
		if len(c.Redis.Addrs) == 0 {
			vb.RequiredField("redis.addrs")
		}
		if c.Redis.CacheTTL <= 0 {
			vb.Field("redis.cache_ttl", "must be positive")
		}
	}

	if c.Evaluation.Parallelism < 1 {
		vb.Field("evaluation.parallelism", "must be at least 1")
	}

	return vb.Build()
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(l.Level)))
	return level, err
}

// Handler builds the slog handler the configuration describes
func (l LogConfig) Handler() slog.Handler {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}
