package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	Time    string `mapstructure:"time" yaml:"time"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Pattern: "%time [%level] %msg%field%n",
		Time:    "2006-01-02 15:04:05",
	}
}

type logrusAdapter struct {
	entry *logrus.Entry
}

func newLogrusLogger(cfg *Config) Logger {
	l := logrus.New()
	l.SetFormatter(&formatter{
		pattern: cfg.Pattern,
		time:    cfg.Time,
	})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetOutput(os.Stderr)

	return &logrusAdapter{
		entry: logrus.NewEntry(l),
	}
}

func (l *logrusAdapter) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logrusAdapter) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logrusAdapter) Info(args ...interface{})                 { l.entry.Info(args...) }
func (l *logrusAdapter) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logrusAdapter) Warn(args ...interface{})                 { l.entry.Warn(args...) }
func (l *logrusAdapter) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logrusAdapter) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logrusAdapter) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusAdapter) WithField(field string, value interface{}) Logger {
	return &logrusAdapter{entry: l.entry.WithField(field, value)}
}

func (l *logrusAdapter) WithError(err error) Logger {
	return &logrusAdapter{entry: l.entry.WithError(err)}
}
