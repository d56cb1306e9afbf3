// Package config provides configuration types and defaults for recipebook.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/paths"
)

// Config holds all configuration options for recipebook.
type Config struct {
	Storage StorageConfig   `mapstructure:"storage"`
	Log     LogConfig       `mapstructure:"log"`
	UI      UIConfig        `mapstructure:"ui"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Format string `mapstructure:"format"` // "yaml" (default), "xml", "json", or "sqlite"
	Path   string `mapstructure:"path"`   // data file or directory; empty uses recipes.<ext> in the working directory
}

// LogConfig holds debug log settings. Logging only happens with --debug.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"` // debug, info, warn, or error
}

// UIConfig holds terminal output options.
type UIConfig struct {
	Plain bool `mapstructure:"plain"` // Disable colors and borders in the menu
}

// storageFormats mirrors storage.Formats; "yml" is accepted as an alias.
var storageFormats = []string{"yaml", "yml", "xml", "json", "sqlite"}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Storage: StorageConfig{
			Format: "yaml",
			Path:   "",
		},
		Log: LogConfig{
			Path:  "debug.log",
			Level: "debug",
		},
		UI: UIConfig{
			Plain: false,
		},
	}
}

// StorePath returns the resolved data file path for the configured storage.
func (c Config) StorePath() string {
	return paths.ResolveStorePath(c.Storage.Path, c.Storage.Format)
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	if err := ValidateStorage(c.Storage); err != nil {
		return err
	}
	return ValidateLog(c.Log)
}

// ValidateStorage checks storage configuration for errors.
// Returns nil if the configuration is valid (an empty format uses the default).
func ValidateStorage(s StorageConfig) error {
	if s.Format == "" {
		return nil
	}
	format := strings.ToLower(strings.TrimSpace(s.Format))
	for _, f := range storageFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("storage.format must be \"yaml\", \"xml\", \"json\", or \"sqlite\", got %q", s.Format)
}

// ValidateLog checks log configuration for errors.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Recipebook Configuration

# Where recipes are stored
storage:
  # Serialization format: yaml (default), xml, json, or sqlite
  format: yaml
  # Data file or directory. Empty means recipes.<ext> in the current directory.
  # path: ~/recipes/recipes.yaml

# Debug log (only written when run with --debug or RECIPEBOOK_DEBUG=1)
log:
  path: debug.log
  level: debug   # debug, info, warn, or error

# Terminal output
ui:
  plain: false   # Disable colors and borders in the menu

# Feature flags
# flags:
#   auto-load: true   # Load stored recipes when the menu starts
#   auto-save: true   # Store recipes when leaving the menu
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
