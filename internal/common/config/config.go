package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/obentoo/abitracker/internal/common/logger"
	"github.com/obentoo/abitracker/internal/common/pacman"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrLogPathNotSet   = errors.New("log path is not configured")
)

// DefaultLogPath is the pacman transaction log read when nothing else is configured
const DefaultLogPath = pacman.DefaultLogPath

// Config represents the application configuration
type Config struct {
	Log      LogConfig    `yaml:"log"`
	Report   ReportConfig `yaml:"report"`
	Timezone string       `yaml:"timezone,omitempty"` // IANA name, empty for the local zone
}

// LogConfig holds input log and diagnostics settings
type LogConfig struct {
	Path        string `yaml:"path"`                   // pacman log to read
	Level       string `yaml:"level,omitempty"`        // debug, info, warn, error
	FileLogging bool   `yaml:"file_logging,omitempty"` // also write diagnostics to a file
	File        string `yaml:"file,omitempty"`         // diagnostics file, default under XDG_STATE_HOME
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	Format        string `yaml:"format"`                   // text, json, yaml or toml
	List          bool   `yaml:"list,omitempty"`           // print every package before the summary
	SkipMalformed bool   `yaml:"skip_malformed,omitempty"` // skip bad lines instead of aborting
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path:  DefaultLogPath,
			Level: "info",
		},
		Report: ReportConfig{
			Format: "text",
		},
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/abitracker/config.yaml (XDG standard - priority)
// 2. ~/.abitracker/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "abitracker", "config.yaml"),
		filepath.Join(home, ".abitracker", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path
// Returns the default path if no config file exists yet
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// Load reads configuration from the first available config file.
// A missing file yields Default() and nothing is written.
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// Keys absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// GetLogPath returns the pacman log path
func (c *Config) GetLogPath() (string, error) {
	if c.Log.Path == "" {
		return "", ErrLogPathNotSet
	}

	path := c.Log.Path
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// Location returns the time zone used to decide which day is today
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

// LogLevel returns the configured diagnostics level
func (c *Config) LogLevel() (logger.Level, error) {
	return logger.ParseLevel(c.Log.Level)
}

// Validate checks the values that can be rejected before reading the log
func (c *Config) Validate() error {
	if _, err := c.GetLogPath(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}
