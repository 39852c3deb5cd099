// Package zapadapter writes monitor records through go.uber.org/zap.
package zapadapter

import (
	"github.com/GoCodeAlone/monitor"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ monitor.LeveledLogger = (*Logger)(nil)

// Logger adapts a zap logger through its sugared API. Enabled asks the core
// directly so disabled levels never reach the sugar's key/value handling.
type Logger struct {
	name  string
	l     *zap.Logger
	sugar *zap.SugaredLogger
}

// New wraps l as a child named name. A nil l uses zap.NewNop().
func New(name string, l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	named := l.Named(name)
	return &Logger{name: name, l: named, sugar: named.Sugar()}
}

// NewFactory returns a registry of named children of l.
func NewFactory(l *zap.Logger) *monitor.LogManager {
	return monitor.NewLogManager(func(name string) monitor.LeveledLogger {
		return New(name, l)
	})
}

// ToLevel maps a monitor level to the zap level of the same severity.
func ToLevel(l monitor.Level) zapcore.Level {
	switch {
	case l <= monitor.LevelDebug:
		return zapcore.DebugLevel
	case l <= monitor.LevelInfo:
		return zapcore.InfoLevel
	case l <= monitor.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (z *Logger) Name() string { return z.name }

func (z *Logger) Enabled(level monitor.Level) bool {
	return z.l.Core().Enabled(ToLevel(level))
}

func (z *Logger) Debug(msg string, args ...any) {
	z.sugar.Debugw(msg, args...)
}

func (z *Logger) Info(msg string, args ...any) {
	z.sugar.Infow(msg, args...)
}

func (z *Logger) Warn(msg string, args ...any) {
	z.sugar.Warnw(msg, args...)
}

func (z *Logger) Error(msg string, args ...any) {
	z.sugar.Errorw(msg, args...)
}
