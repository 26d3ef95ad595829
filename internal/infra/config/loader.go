// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/ytakei/taskwarden/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// EnvStorePath overrides the store file path when set.
const EnvStorePath = "TASKWARDEN_FILE_PATH"

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Path to the config directory (e.g., ~/.config/taskwarden)
	dataDir string // Path to the data directory (e.g., ~/.local/share/taskwarden)
}

// NewLoader creates a new Loader using XDG-style default directories.
func NewLoader() *Loader {
	return &Loader{
		confDir: defaultConfigDir(),
		dataDir: defaultDataDir(),
	}
}

// NewLoaderWithDirs creates a new Loader with explicit directories.
// This is useful for testing.
func NewLoaderWithDirs(confDir, dataDir string) *Loader {
	return &Loader{confDir: confDir, dataDir: dataDir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskwarden")
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskwarden")
}

// Load returns the merged configuration. The config file overrides the
// defaults, and the TASKWARDEN_FILE_PATH environment variable overrides
// the store path from either.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig(l.dataDir)

	file, err := l.loadFile(filepath.Join(l.confDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if file != nil {
		base = mergeConfigs(base, file)
	}

	if p := os.Getenv(EnvStorePath); p != "" {
		base.Store.Path = p
	}

	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "store":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "path":
						if s, ok := v.(string); ok {
							res.Store.Path = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					case "dir":
						if s, ok := v.(string); ok {
							res.Log.Dir = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:    base.Store,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Dir != "" {
		result.Log.Dir = override.Log.Dir
	}

	return result
}
