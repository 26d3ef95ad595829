package domain

import "path/filepath"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// StoreFileName is the default name of the data store file.
const StoreFileName = "tasks.json"

// Config holds the application configuration.
type Config struct {
	Store    StoreConfig
	Log      LogConfig
	Warnings []string // Unknown-key warnings collected during parsing
}

// StoreConfig configures the data store.
type StoreConfig struct {
	Path string // Path to the JSON store file
}

// LogConfig configures logging.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	Dir   string // Log directory; empty disables logging
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + config file).
	Load() (*Config, error)
}

// NewDefaultConfig returns the default configuration rooted at dataDir.
func NewDefaultConfig(dataDir string) *Config {
	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(dataDir, StoreFileName),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
