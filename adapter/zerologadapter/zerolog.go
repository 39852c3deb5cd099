// Package zerologadapter writes monitor records through rs/zerolog.
package zerologadapter

import (
	"fmt"

	"github.com/GoCodeAlone/monitor"
	"github.com/rs/zerolog"
)

var _ monitor.LeveledLogger = (*Logger)(nil)

// Logger adapts a zerolog.Logger with a "logger" field bound to its name.
type Logger struct {
	name string
	l    zerolog.Logger
}

// New returns a child of l carrying name.
func New(name string, l zerolog.Logger) *Logger {
	return &Logger{name: name, l: l.With().Str("logger", name).Logger()}
}

// NewFactory returns a registry of named children of l.
func NewFactory(l zerolog.Logger) *monitor.LogManager {
	return monitor.NewLogManager(func(name string) monitor.LeveledLogger {
		return New(name, l)
	})
}

// ToLevel maps a monitor level to the zerolog level of the same severity.
func ToLevel(l monitor.Level) zerolog.Level {
	switch {
	case l <= monitor.LevelDebug:
		return zerolog.DebugLevel
	case l <= monitor.LevelInfo:
		return zerolog.InfoLevel
	case l <= monitor.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (z *Logger) Name() string { return z.name }

// Enabled checks both the logger's own level and zerolog's global level.
func (z *Logger) Enabled(level monitor.Level) bool {
	zl := ToLevel(level)
	return zl >= z.l.GetLevel() && zl >= zerolog.GlobalLevel()
}

// write applies key/value args to ev; a nil ev (disabled level) is a no-op.
func write(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 >= len(args) {
			ev = ev.Interface("!BADKEY", args[i])
			break
		}
		if err, ok := args[i+1].(error); ok && key == monitor.ErrorKey {
			ev = ev.Err(err)
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}

func (z *Logger) Debug(msg string, args ...any) {
	write(z.l.Debug(), msg, args)
}

func (z *Logger) Info(msg string, args ...any) {
	write(z.l.Info(), msg, args)
}

func (z *Logger) Warn(msg string, args ...any) {
	write(z.l.Warn(), msg, args)
}

func (z *Logger) Error(msg string, args ...any) {
	write(z.l.Error(), msg, args)
}
