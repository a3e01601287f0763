// Package config provides configuration loading and validation for ZooAPI.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file, and environment variables. Command line flags are
// applied by cmd/zooapi on top of the loaded Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPort is used when neither the file nor the environment sets a port.
const DefaultPort = 3001

// Default storage locations per backend, relative to the working directory.
const (
	DefaultJSONPath   = "data/animals.json"
	DefaultSQLitePath = "data/animals.db"
	DefaultBadgerPath = "data/badger"
)

// DefaultStoragePath returns where backend keeps its data when
// storage.path is unset, or "" for an unknown backend.
func DefaultStoragePath(backend string) string {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "json":
		return DefaultJSONPath
	case "sqlite":
		return DefaultSQLitePath
	case "badger":
		return DefaultBadgerPath
	}
	return ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            DefaultPort,
			ShutdownTimeout: "5s",
		},
		Storage: StorageConfig{
			Backend: "json",
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// ResolveConfigPath returns the flag value, else ZOOAPI_CONFIG, else "".
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv("ZOOAPI_CONFIG"))
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("ZOOAPI_HOST")); v != "" {
		cfg.Server.Host = v
	}
	// PORT is the conventional platform variable; ZOOAPI_PORT wins if both are set.
	for _, key := range []string{"PORT", "ZOOAPI_PORT"} {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			continue
		}
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := os.LookupEnv("ZOOAPI_REUSE_PORT"); ok {
		cfg.Server.ReusePort = envBool(v, cfg.Server.ReusePort)
	}
	if v := strings.TrimSpace(os.Getenv("ZOOAPI_STORAGE_BACKEND")); v != "" {
		cfg.Storage.Backend = v
	}
	if v, ok := os.LookupEnv("ZOOAPI_STORAGE_PATH"); ok {
		cfg.Storage.Path = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// envBool parses common truthy/falsy spellings, returning def otherwise.
func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.ShutdownTimeout == "" {
		cfg.Server.ShutdownTimeout = "5s"
	}
	if _, err := time.ParseDuration(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server.shutdown_timeout: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case "":
		cfg.Storage.Backend = "json"
	case "json", "sqlite", "badger":
	default:
		return fmt.Errorf("storage.backend must be json, sqlite or badger, got %q", cfg.Storage.Backend)
	}
	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath(cfg.Storage.Backend)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}
	return nil
}

// ShutdownTimeoutDuration returns the parsed graceful shutdown bound.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}
