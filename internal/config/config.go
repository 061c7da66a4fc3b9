// Package config provides functionality for loading and accessing
// environment variables and application configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/AbuSaud44/expense-dash/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once         sync.Once
	globalConfig *Config
	configOnce   sync.Once
)

// ConfigureLogging sets up logging based on the given configuration and
// returns the configured logger.
func ConfigureLogging(config *Config) *logrus.Logger {
	return logging.Configure(config.Log.Level, config.Log.Format)
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current directory or the project root.
func LoadEnv() {
	once.Do(func() {
		log := logging.GetLogger()

		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				log.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.Warnf("Error loading .env file: %v", err)
			return
		}
		log.Debugf("Loaded environment variables from %s", envFile)
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// GetGlobalConfig returns the global configuration instance, initializing it
// if necessary.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		var err error
		globalConfig, err = InitializeConfig()
		if err != nil {
			logging.GetLogger().Fatalf("Failed to initialize configuration: %v", err)
		}
	})
	return globalConfig
}
