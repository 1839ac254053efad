package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gobees/gobees/internal/config/colors"
)

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig     `yaml:"database" mapstructure:"database"`
	DataSource DataSourceConfig   `yaml:"datasource" mapstructure:"datasource"`
	Log        LogConfig          `yaml:"log" mapstructure:"log"`
	Theme      colors.ColorScheme `yaml:"theme" mapstructure:"theme"`
}

type DatabaseConfig struct {
	// Path of the SQLite file. Empty means ~/.gobees/gobees.db.
	Path string `yaml:"path" mapstructure:"path"`
}

type DataSourceConfig struct {
	MaxConcurrency int `yaml:"max_concurrency" mapstructure:"max_concurrency"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// File to append logs to. Empty means ~/.gobees/logs/gobees.log.
	File string `yaml:"file" mapstructure:"file"`
}

// EnvPrefix prefixes every environment override, e.g. GOBEES_DATABASE__PATH
const EnvPrefix = "GOBEES"

// Load reads config.yaml from the user's config directory, applies
// GOBEES_* environment overrides and defaults, and validates the result.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath, err := getConfigPath(); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")
	v.SetDefault("datasource.max_concurrency", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Registered so environment overrides reach them
	for _, key := range []string{
		"preset", "accent", "title", "subtle", "normal",
		"info_fg", "info_bg", "warning_fg", "warning_bg", "error_fg", "error_bg",
	} {
		v.SetDefault("theme."+key, "")
	}
}

// isNotExist reports whether viper failed because the config file is absent
func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks values that would make the data source unusable
func (c *Config) Validate() error {
	if c.DataSource.MaxConcurrency < 1 {
		return fmt.Errorf("datasource.max_concurrency must be at least 1, got %d", c.DataSource.MaxConcurrency)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Log.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load and Save look for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gobees", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "gobees", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Theme.ApplyDefaults()
}
