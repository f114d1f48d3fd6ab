// Package logger provides the structured logger used across hepsync.
// It is a thin wrapper around logrus that pins log output to stderr, so
// stdout stays reserved for machine-readable results (the network listing
// consumed by the calling orchestrator).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config controls logger construction.
type Config struct {
	Level  string    // "debug", "info", "warn" or "error"
	Format string    // "json" or "text" (default)
	Output io.Writer // defaults to os.Stderr
}

// Logger carries structured context fields along with leveled output.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger with default settings (INFO, text, stderr).
func New() *Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a logger from the given configuration. Invalid
// level strings fall back to INFO rather than failing construction.
func NewWithConfig(config Config) *Logger {
	l := logrus.New()

	if config.Output != nil {
		l.SetOutput(config.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.Level))
	if err != nil || config.Level == "" {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if config.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{entry: logrus.NewEntry(l)}
}

// WithField creates a new logger that includes an extra bit of context.
// Handy for adding things like "component=inspector" to your logs.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields creates a new logger carrying several key/value pairs.
func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keyVals); i += 2 {
		key := fmt.Sprintf("%v", keyVals[i])
		fields[key] = keyVals[i+1]
	}
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
