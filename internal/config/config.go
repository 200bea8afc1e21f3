// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/libreta/internal/logging"
	"github.com/smileynet/libreta/internal/ui"
)

// Config holds all libreta configuration.
type Config struct {
	UI  UI  `yaml:"ui"`
	Log Log `yaml:"log"`
}

// UI holds console presentation settings.
type UI struct {
	Color       string `yaml:"color"`        // "auto" | "always" | "never"
	Confirm     string `yaml:"confirm"`      // Affirmative token for deletion
	MessagesDir string `yaml:"messages_dir"` // Local catalog overrides
}

// Log holds diagnostics logging settings.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty means stderr
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Color:       string(ui.ColorAuto),
			Confirm:     "s",
			MessagesDir: ".libreta/messages",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if _, err := ui.ParseColorMode(c.UI.Color); err != nil {
		return fmt.Errorf("config: ui.color: %w", err)
	}
	if strings.TrimSpace(c.UI.Confirm) == "" {
		return errors.New("config: ui.confirm cannot be empty")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: LIBRETA_COLOR, LIBRETA_CONFIRM, LIBRETA_MESSAGES_DIR,
// LIBRETA_LOG_LEVEL, LIBRETA_LOG_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LIBRETA_COLOR"); v != "" {
		c.UI.Color = v
	}
	if v := os.Getenv("LIBRETA_CONFIRM"); v != "" {
		c.UI.Confirm = v
	}
	if v := os.Getenv("LIBRETA_MESSAGES_DIR"); v != "" {
		c.UI.MessagesDir = v
	}
	if v := os.Getenv("LIBRETA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LIBRETA_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI  *rawUI  `yaml:"ui"`
	Log *rawLog `yaml:"log"`
}

type rawUI struct {
	Color       *string `yaml:"color"`
	Confirm     *string `yaml:"confirm"`
	MessagesDir *string `yaml:"messages_dir"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Color != nil {
			c.UI.Color = *layer.UI.Color
		}
		if layer.UI.Confirm != nil {
			c.UI.Confirm = *layer.UI.Confirm
		}
		if layer.UI.MessagesDir != nil {
			c.UI.MessagesDir = *layer.UI.MessagesDir
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
}
