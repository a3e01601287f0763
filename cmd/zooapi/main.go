package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/zooapi/internal/api"
	"github.com/jroosing/zooapi/internal/config"
	"github.com/jroosing/zooapi/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set ZOOAPI_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port (default $PORT or 3001)")
		backend    = flag.String("storage", "", "Override storage backend: json, sqlite, badger")
		dataPath   = flag.String("data", "", "Override storage path")
		reusePort  = flag.Bool("reuse-port", false, "Set SO_REUSEADDR/SO_REUSEPORT on the listener")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *backend != "" {
		// Drop the previous backend's default location so Validate picks the new one.
		if cfg.Storage.Path == config.DefaultStoragePath(cfg.Storage.Backend) {
			cfg.Storage.Path = ""
		}
		cfg.Storage.Backend = *backend
	}
	if *dataPath != "" {
		cfg.Storage.Path = *dataPath
	}
	if *reusePort {
		cfg.Server.ReusePort = true
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.FromConfig(cfg.Logging))
	logger.Info("ZooAPI starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Backend,
		"data", cfg.Storage.Path,
	)

	runner := api.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
