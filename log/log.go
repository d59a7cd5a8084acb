package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable consulted by Get.
const LevelEnv = "REGEXMATCH_LOGLEVEL"

var (
	log = logrus.New()

	// RawLogger is the shared logrus instance behind Get.
	RawLogger = log
)

func init() {
	log.Formatter = newLogrusTextFormatter()
}

// Get returns the package logger with its level taken from REGEXMATCH_LOGLEVEL.
func Get() Logger {
	log.Level = ParseLevel(os.Getenv(LevelEnv))
	return fromLogrusLogger(log)
}

// New returns a Logger backed by a fresh logrus instance.
func New() Logger {
	l := logrus.New()
	l.Formatter = newLogrusTextFormatter()
	return fromLogrusLogger(l)
}

// FromLogrus wraps an existing logrus logger, e.g. one produced by
// logrus/hooks/test.
func FromLogrus(l *logrus.Logger) Logger {
	return fromLogrusLogger(l)
}

// ParseLevel maps level names to logrus levels, defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "error":
		return ErrorLevel
	case "warn", "warning":
		return WarnLevel
	case "debug":
		return DebugLevel
	default:
		return InfoLevel
	}
}

// NewFormatter returns the JSON formatter for "json" and the text formatter otherwise.
func NewFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &JSONFormatter{}
	default:
		return newLogrusTextFormatter()
	}
}
