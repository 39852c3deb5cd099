package monitor

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// NullMonitor discards every notification.
type NullMonitor struct{}

var _ ComponentMonitor = NullMonitor{}

func (NullMonitor) Instantiating(Member) {}
func (NullMonitor) Instantiated(Member, time.Duration) {}
func (NullMonitor) InstantiationFailed(Member, error) {}
func (NullMonitor) Invoking(Member, any) {}
func (NullMonitor) Invoked(Member, any, time.Duration) {}
func (NullMonitor) InvocationFailed(Member, any, error) {}

// WriterMonitor writes one formatted line per notification to an io.Writer.
// It has no levels; every notification is written. Write errors are ignored.
type WriterMonitor struct {
	mu     sync.Mutex
	w      io.Writer
	format Formatter
}

var _ ComponentMonitor = (*WriterMonitor)(nil)

// NewWriterMonitor returns a monitor writing to w, or to stderr when w is nil.
func NewWriterMonitor(w io.Writer) *WriterMonitor {
	if w == nil {
		w = os.Stderr
	}
	return &WriterMonitor{w: w, format: Format}
}

func (m *WriterMonitor) println(t Template, args ...any) {
	line := m.format(t, args...)
	m.mu.Lock()
	defer m.mu.Unlock()
	_, _ = fmt.Fprintln(m.w, line)
}

func (m *WriterMonitor) Instantiating(ctor Member) {
	m.println(Instantiating, ctor)
}

func (m *WriterMonitor) Instantiated(ctor Member, duration time.Duration) {
	m.println(Instantiated, ctor, Millis(duration))
}

func (m *WriterMonitor) InstantiationFailed(ctor Member, err error) {
	m.println(InstantiationFailed, ctor, errorText(err))
}

func (m *WriterMonitor) Invoking(method Member, instance any) {
	m.println(Invoking, method, instance)
}

func (m *WriterMonitor) Invoked(method Member, instance any, duration time.Duration) {
	m.println(Invoked, method, instance, Millis(duration))
}

func (m *WriterMonitor) InvocationFailed(method Member, instance any, err error) {
	m.println(InvocationFailed, method, instance, errorText(err))
}

// CompositeMonitor forwards every notification to each of its monitors in
// the order they were given.
type CompositeMonitor struct {
	monitors []ComponentMonitor
}

var _ ComponentMonitor = (*CompositeMonitor)(nil)

// NewCompositeMonitor fans out to monitors, skipping nil entries.
func NewCompositeMonitor(monitors ...ComponentMonitor) *CompositeMonitor {
	c := &CompositeMonitor{monitors: make([]ComponentMonitor, 0, len(monitors))}
	for _, m := range monitors {
		if m != nil {
			c.monitors = append(c.monitors, m)
		}
	}
	return c
}

// Monitors returns a copy of the wrapped monitors.
func (c *CompositeMonitor) Monitors() []ComponentMonitor {
	return append([]ComponentMonitor(nil), c.monitors...)
}

func (c *CompositeMonitor) Instantiating(ctor Member) {
	for _, m := range c.monitors {
		m.Instantiating(ctor)
	}
}

func (c *CompositeMonitor) Instantiated(ctor Member, duration time.Duration) {
	for _, m := range c.monitors {
		m.Instantiated(ctor, duration)
	}
}

func (c *CompositeMonitor) InstantiationFailed(ctor Member, err error) {
	for _, m := range c.monitors {
		m.InstantiationFailed(ctor, err)
	}
}

func (c *CompositeMonitor) Invoking(method Member, instance any) {
	for _, m := range c.monitors {
		m.Invoking(method, instance)
	}
}

func (c *CompositeMonitor) Invoked(method Member, instance any, duration time.Duration) {
	for _, m := range c.monitors {
		m.Invoked(method, instance, duration)
	}
}

func (c *CompositeMonitor) InvocationFailed(method Member, instance any, err error) {
	for _, m := range c.monitors {
		m.InvocationFailed(method, instance, err)
	}
}
