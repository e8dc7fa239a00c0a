package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional TOML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// The data dir may itself be redirected before the config file is
	// looked up, so the env pass runs twice: once to find the file, once
	// to let env vars win over file values.
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := loadConfigFile(l.config, l.config.GetConfigPath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DataDir  *string
	Filename *string
	Width    *int
	NoColor  *bool
	Verbose  *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		config.Storage.Dir = *overrides.DataDir
	}
	if overrides.Filename != nil {
		config.Storage.Filename = *overrides.Filename
	}
	if overrides.Width != nil {
		config.Display.Width = *overrides.Width
	}
	if overrides.NoColor != nil && *overrides.NoColor {
		config.Display.Color = false
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// loadConfigFile merges TOML values from path into config. A missing file
// is not an error; the file is optional.
func loadConfigFile(config *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
