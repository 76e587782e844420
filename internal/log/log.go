// Package log builds the application logger. All output goes to stderr as
// JSON so the rendered calendar on stdout stays clean.
package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates the application logger entry for the given level name
// (debug, info, warn, error). Unknown or empty names fall back to info.
func New(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(parseLevel(level))

	return logrus.NewEntry(logger).WithField("component", "agendacal")
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
