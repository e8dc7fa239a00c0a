package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration options for the todo application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds tasks-file configuration
type StorageConfig struct {
	Dir      string `toml:"dir" env:"TODO_DATA_DIR"`
	Filename string `toml:"filename" env:"TODO_DATA_FILENAME"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Width int  `toml:"width" env:"TODO_DISPLAY_WIDTH"`
	Color bool `toml:"color" env:"TODO_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TODO_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Storage: StorageConfig{
			Dir:      defaultDataDir,
			Filename: "tasks.json",
		},
		Display: DisplayConfig{
			Width: 75,
			Color: true,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetTasksPath returns the full path to the tasks file
func (c *Config) GetTasksPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigPath returns the path of the optional TOML config file, which
// lives next to the tasks file.
func (c *Config) GetConfigPath() string {
	return filepath.Join(c.Storage.Dir, "config.toml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TODO_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TODO_DATA_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if width := os.Getenv("TODO_DISPLAY_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.Width = w
		}
	}
	if color := os.Getenv("TODO_DISPLAY_COLOR"); color != "" {
		if b, err := strconv.ParseBool(color); err == nil {
			c.Display.Color = b
		}
	}
	if verbose := os.Getenv("TODO_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "tasks filename cannot be empty"}
	}
	if c.Display.Width < 10 {
		return &ConfigError{Field: "display.width", Message: "display width must be at least 10"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
