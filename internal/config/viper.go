// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AppName is used for config and data directory resolution.
const AppName = "expense-dash"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		File       string `mapstructure:"file" yaml:"file"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		Categories string `mapstructure:"categories" yaml:"categories"`
		Recurring  string `mapstructure:"recurring" yaml:"recurring"`
	} `mapstructure:"data" yaml:"data"`

	Charts struct {
		Width  int `mapstructure:"width" yaml:"width"`
		Height int `mapstructure:"height" yaml:"height"`
	} `mapstructure:"charts" yaml:"charts"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-dash")
	v.AddConfigPath(".expense-dash")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.file", "expenses.csv")
	v.SetDefault("data.directory", "")
	v.SetDefault("data.categories", "")
	v.SetDefault("data.recurring", "")

	v.SetDefault("charts.width", 800)
	v.SetDefault("charts.height", 400)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Charts.Width < 100 || config.Charts.Height < 100 {
		return fmt.Errorf("chart dimensions must be at least 100x100, got: %dx%d",
			config.Charts.Width, config.Charts.Height)
	}

	return nil
}

// DataFile resolves the ledger file path. A relative data.file is joined
// onto data.directory when one is configured, otherwise it is used as-is
// so the ledger lives next to wherever the tool is run.
func (c *Config) DataFile() string {
	if filepath.IsAbs(c.Data.File) || c.Data.Directory == "" {
		return c.Data.File
	}
	return filepath.Join(c.Data.Directory, c.Data.File)
}

// CategoriesFile resolves the category store path, defaulting to the XDG
// config directory.
func (c *Config) CategoriesFile() string {
	if c.Data.Categories != "" {
		return c.Data.Categories
	}
	return filepath.Join(xdg.ConfigHome, AppName, "categories.yaml")
}

// RecurringFile resolves the recurring-rules path, defaulting to the XDG
// config directory.
func (c *Config) RecurringFile() string {
	if c.Data.Recurring != "" {
		return c.Data.Recurring
	}
	return filepath.Join(xdg.ConfigHome, AppName, "recurring.yaml")
}
