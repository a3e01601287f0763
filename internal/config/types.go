package config

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
	// ReusePort sets SO_REUSEADDR/SO_REUSEPORT on the listener (unix only).
	ReusePort bool `yaml:"reuse_port" json:"reuse_port"`
	// ShutdownTimeout bounds graceful shutdown (e.g., "5s").
	ShutdownTimeout string `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// StorageConfig selects the animal store backend.
type StorageConfig struct {
	// Backend is one of "json", "sqlite", "badger".
	Backend string `yaml:"backend" json:"backend"`
	// Path is the JSON document, SQLite file or Badger directory. Empty
	// selects the backend default under data/.
	Path string `yaml:"path" json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields" json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}
