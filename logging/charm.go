package logging

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Config controls the output of the console logger
type Config struct {
	// Level is the minimum severity that gets emitted
	Level Level

	// Output is the destination writer; defaults to os.Stderr
	Output io.Writer

	// JSON switches the formatter from human-readable text to JSON lines
	JSON bool
}

// Level identifies a log severity
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) toCharmLevel() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// DefaultConfig returns the configuration used when none is provided
func DefaultConfig() *Config {
	return &Config{
		Level:  InfoLevel,
		Output: os.Stderr,
	}
}

// charmLogger implements Logger on top of charmbracelet/log
type charmLogger struct {
	logger *charmlog.Logger
}

// New creates a console logger backed by charmbracelet/log
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level.toCharmLevel(),
	})
	if cfg.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}

	return &charmLogger{logger: logger}
}

// Debug implements Logger.Debug
func (l *charmLogger) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info implements Logger.Info
func (l *charmLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warn implements Logger.Warn
func (l *charmLogger) Warn(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error implements Logger.Error
func (l *charmLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}
