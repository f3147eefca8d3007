// Package logging provides the logger capability injected into every
// component that produces observable output.
package logging

// Logger provides a simple interface for leveled, printf-style logging
type Logger interface {
	// Debug logs a message at debug level
	Debug(format string, args ...interface{})

	// Info logs a message at info level
	Info(format string, args ...interface{})

	// Warn logs a message at warning level
	Warn(format string, args ...interface{})

	// Error logs a message at error level
	Error(format string, args ...interface{})
}

// NopLogger is a no-op logger implementation
type NopLogger struct{}

// Debug implements Logger.Debug
func (l *NopLogger) Debug(format string, args ...interface{}) {}

// Info implements Logger.Info
func (l *NopLogger) Info(format string, args ...interface{}) {}

// Warn implements Logger.Warn
func (l *NopLogger) Warn(format string, args ...interface{}) {}

// Error implements Logger.Error
func (l *NopLogger) Error(format string, args ...interface{}) {}

// NewNopLogger creates a new no-op logger
func NewNopLogger() Logger {
	return &NopLogger{}
}
