package monitor

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to LeveledLogger. Every record carries a
// "logger" attribute with the logger's name.
type SlogLogger struct {
	name   string
	logger *slog.Logger
}

var _ LeveledLogger = (*SlogLogger)(nil)

// NewSlogLogger wraps l under name. A nil l uses slog.Default().
func NewSlogLogger(name string, l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{name: name, logger: l.With("logger", name)}
}

// NewSlogFactory returns a registry whose loggers all write to handler.
func NewSlogFactory(handler slog.Handler) *LogManager {
	base := slog.New(handler)
	return NewLogManager(func(name string) LeveledLogger {
		return NewSlogLogger(name, base)
	})
}

func (s *SlogLogger) Name() string { return s.name }

func (s *SlogLogger) Enabled(level Level) bool {
	return s.logger.Enabled(context.Background(), slog.Level(level))
}

func (s *SlogLogger) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *SlogLogger) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

func (s *SlogLogger) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *SlogLogger) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}
