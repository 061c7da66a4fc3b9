// Package logging provides the shared logger used across the application.
// All packages obtain their logger through GetLogger so that level and format
// configured at startup apply everywhere.
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return l
}

// GetLogger returns the shared logger instance.
func GetLogger() *logrus.Logger {
	return logger
}

// Configure applies the given level and format ("text" or "json") to the
// shared logger and returns it.
func Configure(level, format string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// SetAllLogLevels sets the level on the shared logger and on the global
// logrus standard logger so that loggers created before configuration ran
// pick it up as well.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	logger.SetLevel(level)
}
