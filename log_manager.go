package monitor

import (
	"log/slog"
	"os"
	"slices"
	"sync"
)

// LogManager is a LoggerFactory that creates one logger per name and hands
// the same instance back on every later lookup. It is safe for concurrent use.
type LogManager struct {
	mu      sync.RWMutex
	create  func(name string) LeveledLogger
	loggers map[string]LeveledLogger
}

// NewLogManager returns a registry that builds loggers with create.
func NewLogManager(create func(name string) LeveledLogger) *LogManager {
	return &LogManager{
		create:  create,
		loggers: make(map[string]LeveledLogger),
	}
}

// GetLogger returns the logger registered under name, creating it on first use.
func (m *LogManager) GetLogger(name string) LeveledLogger {
	m.mu.RLock()
	l, ok := m.loggers[name]
	m.mu.RUnlock()
	if ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok = m.loggers[name]; ok {
		return l
	}
	if m.create != nil {
		l = m.create(name)
	}
	if l == nil {
		l = NewSlogLogger(name, slog.New(slog.DiscardHandler))
	}
	m.loggers[name] = l
	return l
}

// Names returns the names resolved so far in sorted order.
func (m *LogManager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.loggers))
	for name := range m.loggers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	defaultMu      sync.RWMutex
	defaultManager LoggerFactory = newBuiltinManager()
)

func newBuiltinManager() *LogManager {
	return NewSlogFactory(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// DefaultManager returns the process-wide LoggerFactory. Unless replaced it
// writes text records at info level and above to stderr.
func DefaultManager() LoggerFactory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefaultManager replaces the process-wide LoggerFactory. Passing nil
// restores the built-in one.
func SetDefaultManager(f LoggerFactory) {
	if f == nil {
		f = newBuiltinManager()
	}
	defaultMu.Lock()
	defaultManager = f
	defaultMu.Unlock()
}

// GetLogger resolves name through the default manager.
func GetLogger(name string) LeveledLogger {
	return DefaultManager().GetLogger(name)
}
