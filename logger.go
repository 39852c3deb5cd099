package monitor

// Logger defines the interface for structured logging used throughout the
// monitors. Arguments are alternating key-value pairs:
//
//	logger.Debug("monitor: instantiating", "member", sig, "kind", "constructor")
//
// This shape is compatible with slog, logrus, zap, zerolog and logr, all of
// which have adapters in this module.
type Logger interface {
	// Info logs an informational message with optional key-value pairs.
	Info(msg string, args ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, args ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, args ...any)

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, args ...any)
}

// LeveledLogger is a named Logger that can report whether a level is
// currently enabled. Monitors consult Enabled before building a message so
// that disabled levels cost nothing beyond the check itself.
type LeveledLogger interface {
	Logger

	// Name returns the name the logger was resolved under.
	Name() string

	// Enabled reports whether records at level would be emitted.
	Enabled(level Level) bool
}

// LoggerFactory resolves a logger by name.
type LoggerFactory interface {
	GetLogger(name string) LeveledLogger
}

// LoggerFactoryFunc adapts a function to the LoggerFactory interface.
type LoggerFactoryFunc func(name string) LeveledLogger

// GetLogger calls f(name).
func (f LoggerFactoryFunc) GetLogger(name string) LeveledLogger {
	return f(name)
}

// ErrorKey is the key under which an error value is attached to a record.
// Adapters look for it to hand the original error to the backend's native
// error field.
const ErrorKey = "error"
