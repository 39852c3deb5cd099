package monitor

import (
	"strings"
	"sync"
)

// TestLogger is a LeveledLogger that captures log entries for verification.
type TestLogger struct {
	mu       sync.Mutex
	name     string
	minLevel Level
	entries  []TestLogEntry
}

type TestLogEntry struct {
	Level   string
	Message string
	Args    []any
}

func NewTestLogger(name string, minLevel Level) *TestLogger {
	return &TestLogger{
		name:     name,
		minLevel: minLevel,
		entries:  make([]TestLogEntry, 0),
	}
}

func (t *TestLogger) record(level, msg string, args []any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, TestLogEntry{Level: level, Message: msg, Args: args})
}

func (t *TestLogger) Name() string { return t.name }

func (t *TestLogger) Enabled(level Level) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return level >= t.minLevel
}

func (t *TestLogger) SetLevel(level Level) {
	t.mu.Lock()
	t.minLevel = level
	t.mu.Unlock()
}

func (t *TestLogger) Info(msg string, args ...any) {
	t.record("info", msg, args)
}

func (t *TestLogger) Error(msg string, args ...any) {
	t.record("error", msg, args)
}

func (t *TestLogger) Warn(msg string, args ...any) {
	t.record("warn", msg, args)
}

func (t *TestLogger) Debug(msg string, args ...any) {
	t.record("debug", msg, args)
}

func (t *TestLogger) GetEntries() []TestLogEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TestLogEntry(nil), t.entries...)
}

func (t *TestLogger) Clear() {
	t.mu.Lock()
	t.entries = make([]TestLogEntry, 0)
	t.mu.Unlock()
}

func (t *TestLogger) FindEntry(level, message string) *TestLogEntry {
	for _, entry := range t.GetEntries() {
		if entry.Level == level && strings.Contains(entry.Message, message) {
			return &entry
		}
	}
	return nil
}

// Helper function to extract key-value pairs from args
func argsToMap(args []any) map[string]any {
	result := make(map[string]any)
	for i := 0; i < len(args)-1; i += 2 {
		if key, ok := args[i].(string); ok {
			result[key] = args[i+1]
		}
	}
	return result
}

// countingFormatter wraps Format and counts how often it ran.
type countingFormatter struct {
	mu    sync.Mutex
	calls int
}

func (c *countingFormatter) Format(t Template, args ...any) string {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return Format(t, args...)
}

func (c *countingFormatter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type testComponent struct {
	Label string
}

func (c *testComponent) String() string { return "component:" + c.Label }

func (c *testComponent) Rename(label string) string {
	old := c.Label
	c.Label = label
	return old
}

func newTestComponent(label string) (*testComponent, error) {
	return &testComponent{Label: label}, nil
}
