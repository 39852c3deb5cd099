package monitor

import (
	"fmt"
	"reflect"
	"time"
)

// LookupFunc picks the logger for a notification about member. fallback is
// the logger the EventLogger was built with.
type LookupFunc func(member Member, fallback LeveledLogger) LeveledLogger

// Option configures an EventLogger.
type Option func(*eventLoggerOptions)

type eventLoggerOptions struct {
	factory LoggerFactory
	lookup  LookupFunc
	format  Formatter
}

// WithFactory sets the factory used to resolve loggers by name. Defaults to
// DefaultManager().
func WithFactory(f LoggerFactory) Option {
	return func(o *eventLoggerOptions) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithLookup routes notifications to loggers chosen per member.
func WithLookup(fn LookupFunc) Option {
	return func(o *eventLoggerOptions) {
		if fn != nil {
			o.lookup = fn
		}
	}
}

// WithFormatter replaces the message formatter.
func WithFormatter(f Formatter) Option {
	return func(o *eventLoggerOptions) {
		if f != nil {
			o.format = f
		}
	}
}

func buildOptions(opts []Option) eventLoggerOptions {
	o := eventLoggerOptions{
		lookup: singleLogger,
		format: Format,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.factory == nil {
		o.factory = DefaultManager()
	}
	return o
}

// singleLogger ignores the member: one EventLogger writes to one logger.
func singleLogger(_ Member, fallback LeveledLogger) LeveledLogger {
	return fallback
}

// DefaultLoggerName is the logger name used by NewDefaultEventLogger.
var DefaultLoggerName = TypeName(reflect.TypeFor[EventLogger]())

// EventLogger is a ComponentMonitor that writes each notification to a
// LeveledLogger. Successful steps go to debug and failures to warn.
type EventLogger struct {
	logger LeveledLogger
	lookup LookupFunc
	format Formatter
}

var _ ComponentMonitor = (*EventLogger)(nil)

// NewEventLogger returns an EventLogger writing to logger. A nil logger is
// replaced by the factory's logger for DefaultLoggerName.
func NewEventLogger(logger LeveledLogger, opts ...Option) *EventLogger {
	return newEventLogger(buildOptions(opts), logger)
}

// NewNamedEventLogger resolves the logger called name through the factory.
func NewNamedEventLogger(name string, opts ...Option) *EventLogger {
	o := buildOptions(opts)
	return newEventLogger(o, o.factory.GetLogger(name))
}

// NewTypedEventLogger resolves the logger named after t's fully qualified name.
func NewTypedEventLogger(t reflect.Type, opts ...Option) *EventLogger {
	return NewNamedEventLogger(TypeName(t), opts...)
}

// NewEventLoggerFor resolves the logger named after T's fully qualified name.
func NewEventLoggerFor[T any](opts ...Option) *EventLogger {
	return NewTypedEventLogger(reflect.TypeFor[T](), opts...)
}

// NewDefaultEventLogger resolves the logger named DefaultLoggerName.
func NewDefaultEventLogger(opts ...Option) *EventLogger {
	return NewNamedEventLogger(DefaultLoggerName, opts...)
}

func newEventLogger(o eventLoggerOptions, logger LeveledLogger) *EventLogger {
	if logger == nil {
		logger = o.factory.GetLogger(DefaultLoggerName)
	}
	return &EventLogger{
		logger: logger,
		lookup: o.lookup,
		format: o.format,
	}
}

// Logger returns the logger the EventLogger was built with.
func (e *EventLogger) Logger() LeveledLogger {
	return e.logger
}

// LoggerFor returns the logger that receives notifications about member.
func (e *EventLogger) LoggerFor(member Member) LeveledLogger {
	if l := e.lookup(member, e.logger); l != nil {
		return l
	}
	return e.logger
}

func (e *EventLogger) Instantiating(ctor Member) {
	e.emit(ctor, LevelDebug, Instantiating, func() []any {
		return []any{ctor}
	}, nil)
}

func (e *EventLogger) Instantiated(ctor Member, duration time.Duration) {
	e.emit(ctor, LevelDebug, Instantiated, func() []any {
		return []any{ctor, Millis(duration)}
	}, func() []any {
		return []any{"durationMs", Millis(duration)}
	})
}

func (e *EventLogger) InstantiationFailed(ctor Member, err error) {
	e.emit(ctor, LevelWarn, InstantiationFailed, func() []any {
		return []any{ctor, errorText(err)}
	}, func() []any {
		return errorField(err)
	})
}

func (e *EventLogger) Invoking(method Member, instance any) {
	e.emit(method, LevelDebug, Invoking, func() []any {
		return []any{method, instance}
	}, func() []any {
		return []any{"instance", fmt.Sprint(instance)}
	})
}

func (e *EventLogger) Invoked(method Member, instance any, duration time.Duration) {
	e.emit(method, LevelDebug, Invoked, func() []any {
		return []any{method, instance, Millis(duration)}
	}, func() []any {
		return []any{"instance", fmt.Sprint(instance), "durationMs", Millis(duration)}
	})
}

func (e *EventLogger) InvocationFailed(method Member, instance any, err error) {
	e.emit(method, LevelWarn, InvocationFailed, func() []any {
		return []any{method, instance, errorText(err)}
	}, func() []any {
		return append([]any{"instance", fmt.Sprint(instance)}, errorField(err)...)
	})
}

// emit writes one record at level if the member's logger has it enabled.
// Template arguments and fields are only built after the level check.
// Nothing escapes: a panicking logger or formatter loses the record.
func (e *EventLogger) emit(member Member, level Level, tmpl Template, tmplArgs, fields func() []any) {
	defer func() { _ = recover() }()

	logger := e.LoggerFor(member)
	if !logger.Enabled(level) {
		return
	}

	msg := e.format(tmpl, tmplArgs()...)
	args := memberFields(member)
	if fields != nil {
		args = append(args, fields()...)
	}

	switch level {
	case LevelWarn:
		logger.Warn(msg, args...)
	default:
		logger.Debug(msg, args...)
	}
}

func memberFields(member Member) []any {
	if member == nil {
		return []any{"member", "<nil>"}
	}
	return []any{"member", member.Signature(), "kind", member.Kind().String()}
}

func errorField(err error) []any {
	if err == nil {
		return nil
	}
	return []any{ErrorKey, err}
}
