package monitor

import (
	"fmt"
	"time"
)

// Template is a printf-style message template for one lifecycle event.
type Template string

// Message templates shared by the monitors in this module. Members are
// rendered with %v, which resolves to Member.String.
const (
	Instantiating       Template = "monitor: instantiating %v"
	Instantiated        Template = "monitor: instantiated %v [%d ms]"
	InstantiationFailed Template = "monitor: instantiation failed: %v, reason: '%s'"
	Invoking            Template = "monitor: invoking %v on %v"
	Invoked             Template = "monitor: invoked %v on %v [%d ms]"
	InvocationFailed    Template = "monitor: invocation failed: %v on %v, reason: '%s'"
)

// Formatter renders a template with its ordered arguments.
type Formatter func(t Template, args ...any) string

// Format is the default Formatter.
func Format(t Template, args ...any) string {
	return fmt.Sprintf(string(t), args...)
}

// Millis converts d to whole milliseconds.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func errorText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
