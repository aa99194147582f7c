// Package log provides the process-wide structured logger.
package log

import (
	"sync"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithError(err error) Logger
}

var (
	once   sync.Once
	logger Logger
)

// Init configures the process logger once. Later calls are no-ops.
func Init(cfg *Config) {
	once.Do(func() {
		logger = newLogrusLogger(cfg)
	})
}

// GetLogger returns the process logger, initializing it with defaults if
// Init was never called.
func GetLogger() Logger {
	Init(DefaultConfig())
	return logger
}
