// Package logradapter writes monitor records through a go-logr/logr sink.
//
// logr has only verbosity levels and errors. Debug maps to V(1); Info and
// Warn map to V(0), with Warn adding "severity"="warn"; Error maps to
// logr's Error with the error taken from the monitor.ErrorKey argument.
package logradapter

import (
	"github.com/GoCodeAlone/monitor"
	"github.com/go-logr/logr"
)

// DebugVerbosity is the logr V-level used for debug records.
const DebugVerbosity = 1

var _ monitor.LeveledLogger = (*Logger)(nil)

type Logger struct {
	name string
	l    logr.Logger
}

// New returns a child of l named name.
func New(name string, l logr.Logger) *Logger {
	return &Logger{name: name, l: l.WithName(name)}
}

// NewFactory returns a registry of named children of l.
func NewFactory(l logr.Logger) *monitor.LogManager {
	return monitor.NewLogManager(func(name string) monitor.LeveledLogger {
		return New(name, l)
	})
}

func (g *Logger) Name() string { return g.name }

func (g *Logger) Enabled(level monitor.Level) bool {
	if level <= monitor.LevelDebug {
		return g.l.V(DebugVerbosity).Enabled()
	}
	return g.l.Enabled()
}

func (g *Logger) Debug(msg string, args ...any) {
	g.l.V(DebugVerbosity).Info(msg, args...)
}

func (g *Logger) Info(msg string, args ...any) {
	g.l.Info(msg, args...)
}

func (g *Logger) Warn(msg string, args ...any) {
	g.l.Info(msg, append([]any{"severity", "warn"}, args...)...)
}

func (g *Logger) Error(msg string, args ...any) {
	rest, err := splitError(args)
	g.l.Error(err, msg, rest...)
}

// splitError removes the first error under monitor.ErrorKey from args.
func splitError(args []any) ([]any, error) {
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok && key == monitor.ErrorKey {
			if err, ok := args[i+1].(error); ok {
				rest := make([]any, 0, len(args)-2)
				rest = append(rest, args[:i]...)
				rest = append(rest, args[i+2:]...)
				return rest, err
			}
		}
	}
	return args, nil
}
