// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "workout-tui"

// Config represents the application configuration.
type Config struct {
	Storage   StorageConfig  `yaml:"storage"`
	UI        UIConfig       `yaml:"ui"`
	Reminders ReminderConfig `yaml:"reminders"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	// Path is the SQLite database file. Empty means DefaultDBPath.
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode bool   `yaml:"vim_mode"`
	Units   string `yaml:"units"` // "kg" or "lb"

	// Week strip geometry and timing.
	CellWidth       int `yaml:"cell_width"`
	EdgeTolerance   int `yaml:"edge_tolerance"`
	FrameIntervalMS int `yaml:"frame_interval_ms"`

	RestSeconds int    `yaml:"rest_seconds"`
	StartTab    string `yaml:"start_tab,omitempty"`
}

// ReminderConfig controls the planned-workout notification.
type ReminderConfig struct {
	Enabled bool `yaml:"enabled"`
	Hour    int  `yaml:"hour"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:         true,
			Units:           "kg",
			CellWidth:       8,
			EdgeTolerance:   1,
			FrameIntervalMS: 16,
			RestSeconds:     90,
			StartTab:        "week",
		},
		Reminders: ReminderConfig{
			Enabled: true,
			Hour:    18,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.UI.Units {
	case "kg", "lb":
	default:
		return fmt.Errorf("ui.units must be kg or lb, got %q", c.UI.Units)
	}
	if c.UI.CellWidth < 4 {
		return fmt.Errorf("ui.cell_width must be at least 4, got %d", c.UI.CellWidth)
	}
	if c.UI.EdgeTolerance < 0 {
		return errors.New("ui.edge_tolerance cannot be negative")
	}
	if c.UI.FrameIntervalMS <= 0 {
		return errors.New("ui.frame_interval_ms must be positive")
	}
	if c.UI.RestSeconds <= 0 {
		return errors.New("ui.rest_seconds must be positive")
	}
	if c.Reminders.Hour < 0 || c.Reminders.Hour > 23 {
		return fmt.Errorf("reminders.hour must be between 0 and 23, got %d", c.Reminders.Hour)
	}
	return nil
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DBPath returns the configured database path or the default one.
func (c *Config) DBPath() (string, error) {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	return DefaultDBPath()
}

// LogPath returns the configured log file or the default one.
func (c *Config) LogPath() (string, error) {
	if c.Logging.File != "" {
		return expandHome(c.Logging.File)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}
