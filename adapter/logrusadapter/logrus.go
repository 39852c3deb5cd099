// Package logrusadapter writes monitor records through sirupsen/logrus.
package logrusadapter

import (
	"fmt"

	"github.com/GoCodeAlone/monitor"
	"github.com/sirupsen/logrus"
)

var _ monitor.LeveledLogger = (*Logger)(nil)

// Logger adapts a logrus entry. The logger name is attached as the "logger"
// field and an error under monitor.ErrorKey goes through WithError.
type Logger struct {
	name string
	log  *logrus.Entry
}

// New wraps entry under name. A nil entry uses the logrus standard logger.
func New(name string, entry *logrus.Entry) *Logger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Logger{name: name, log: entry.WithField("logger", name)}
}

// NewFactory returns a registry deriving one named entry per logger from log.
func NewFactory(log *logrus.Logger) *monitor.LogManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return monitor.NewLogManager(func(name string) monitor.LeveledLogger {
		return New(name, logrus.NewEntry(log))
	})
}

// ToLevel maps a monitor level to the logrus level of the same severity.
func ToLevel(l monitor.Level) logrus.Level {
	switch {
	case l <= monitor.LevelDebug:
		return logrus.DebugLevel
	case l <= monitor.LevelInfo:
		return logrus.InfoLevel
	case l <= monitor.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func (s *Logger) Name() string { return s.name }

func (s *Logger) Enabled(level monitor.Level) bool {
	return s.log.Logger.IsLevelEnabled(ToLevel(level))
}

func (s *Logger) withArgs(args ...any) *logrus.Entry {
	fields := logrus.Fields{}
	entry := s.log
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 >= len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		if err, ok := args[i+1].(error); ok && key == monitor.ErrorKey {
			entry = entry.WithError(err)
			continue
		}
		fields[key] = args[i+1]
	}
	return entry.WithFields(fields)
}

func (s *Logger) Debug(msg string, args ...any) {
	s.withArgs(args...).Debug(msg)
}

func (s *Logger) Info(msg string, args ...any) {
	s.withArgs(args...).Info(msg)
}

func (s *Logger) Warn(msg string, args ...any) {
	s.withArgs(args...).Warn(msg)
}

func (s *Logger) Error(msg string, args ...any) {
	s.withArgs(args...).Error(msg)
}
