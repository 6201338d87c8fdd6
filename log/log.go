package log

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = fromLogrusLogger(defaultLogger())

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = NewFormatter(os.Getenv("REGEXCACHE_LOGFORMAT"))
	return logger
}

// NewFormatter returns the formatter for the given format name. "json"
// selects JSONFormatter; anything else selects a plain text formatter with
// full timestamps.
func NewFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &JSONFormatter{TimestampFormat: time.RFC3339}
	default:
		return newLogrusTextFormatter()
	}
}

// Get returns the shared logger, with its level set from the
// REGEXCACHE_LOGLEVEL environment variable.
func Get() Logger {
	switch strings.ToLower(os.Getenv("REGEXCACHE_LOGLEVEL")) {
	case "error":
		log.SetLevel(ErrorLevel)
	case "warn":
		log.SetLevel(WarnLevel)
	case "debug":
		log.SetLevel(DebugLevel)
	default:
		log.SetLevel(InfoLevel)
	}

	return log
}
