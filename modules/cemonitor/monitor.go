// Package cemonitor provides a component monitor that publishes lifecycle
// notifications as CloudEvents.
//
// Each notification becomes one event delivered synchronously, in
// registration order, to every Observer. Observer failures are handed to an
// optional error handler and never reach the container:
//
//	mon, err := cemonitor.NewMonitor("app/container",
//	    cemonitor.WithObservers(cemonitor.NewLoggingObserver(logger)),
//	)
//
// Event data is JSON encoded EventData. Failure events carry the error text;
// the error value itself stays with the caller.
package cemonitor

import (
	"context"
	"fmt"
	"time"

	"github.com/GoCodeAlone/monitor"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// DefaultSource is the CloudEvents source used when none is given.
const DefaultSource = "github.com/GoCodeAlone/monitor"

// Observer receives the events emitted by Monitor.
type Observer interface {
	// OnEvent is called once per lifecycle notification.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer.
	ObserverID() string
}

// ErrorHandler is told about observer failures.
type ErrorHandler func(observer Observer, event cloudevents.Event, err error)

// Option configures a Monitor.
type Option func(*Monitor) error

// WithObservers appends observers. Nil observers are rejected.
func WithObservers(observers ...Observer) Option {
	return func(m *Monitor) error {
		for _, o := range observers {
			if o == nil {
				return ErrObserverNil
			}
			m.observers = append(m.observers, o)
		}
		return nil
	}
}

// WithErrorHandler sets the function told about observer errors and panics.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Monitor) error {
		m.onError = h
		return nil
	}
}

// WithContext sets the context passed to observers.
func WithContext(ctx context.Context) Option {
	return func(m *Monitor) error {
		if ctx != nil {
			m.ctx = ctx
		}
		return nil
	}
}

// Monitor is a monitor.ComponentMonitor that emits CloudEvents.
type Monitor struct {
	source    string
	observers []Observer
	onError   ErrorHandler
	ctx       context.Context
}

var _ monitor.ComponentMonitor = (*Monitor)(nil)

// NewMonitor returns a Monitor emitting events with the given source.
func NewMonitor(source string, opts ...Option) (*Monitor, error) {
	if source == "" {
		source = DefaultSource
	}
	m := &Monitor{source: source, ctx: context.Background()}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Source returns the CloudEvents source attribute of emitted events.
func (m *Monitor) Source() string {
	return m.source
}

// Observers returns a copy of the registered observers.
func (m *Monitor) Observers() []Observer {
	return append([]Observer(nil), m.observers...)
}

func (m *Monitor) Instantiating(ctor monitor.Member) {
	m.emit(EventTypeInstantiating, ctor, nil, 0, nil)
}

func (m *Monitor) Instantiated(ctor monitor.Member, duration time.Duration) {
	m.emit(EventTypeInstantiated, ctor, nil, duration, nil)
}

func (m *Monitor) InstantiationFailed(ctor monitor.Member, err error) {
	m.emit(EventTypeInstantiationFailed, ctor, nil, 0, errText(err))
}

func (m *Monitor) Invoking(method monitor.Member, instance any) {
	m.emit(EventTypeInvoking, method, instance, 0, nil)
}

func (m *Monitor) Invoked(method monitor.Member, instance any, duration time.Duration) {
	m.emit(EventTypeInvoked, method, instance, duration, nil)
}

func (m *Monitor) InvocationFailed(method monitor.Member, instance any, err error) {
	m.emit(EventTypeInvocationFailed, method, instance, 0, errText(err))
}

func (m *Monitor) emit(eventType string, member monitor.Member, instance any, duration time.Duration, errMsg *string) {
	if len(m.observers) == 0 {
		return
	}

	data := EventData{
		Member:     "<nil>",
		DurationMs: monitor.Millis(duration),
	}
	if member != nil {
		data.Member = member.Signature()
		data.Kind = member.Kind().String()
	}
	if instance != nil {
		data.Instance = fmt.Sprint(instance)
	}
	if errMsg != nil {
		data.Error = *errMsg
	}

	event := NewEvent(eventType, m.source, data)
	for _, o := range m.observers {
		m.deliver(o, event)
	}
}

func (m *Monitor) deliver(o Observer, event cloudevents.Event) {
	defer func() {
		if r := recover(); r != nil {
			m.handleError(o, event, fmt.Errorf("observer %s panicked: %v", o.ObserverID(), r))
		}
	}()
	if err := o.OnEvent(m.ctx, event); err != nil {
		m.handleError(o, event, err)
	}
}

func (m *Monitor) handleError(o Observer, event cloudevents.Event, err error) {
	if m.onError == nil {
		return
	}
	defer func() { _ = recover() }()
	m.onError(o, event, err)
}

// NewEvent builds a CloudEvent of eventType carrying data as JSON.
func NewEvent(eventType, source string, data EventData) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(generateEventID())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(time.Now())
	event.SetSpecVersion(cloudevents.VersionV1)
	_ = event.SetData(cloudevents.ApplicationJSON, data)
	return event
}

// generateEventID returns a UUIDv7, falling back to v4.
func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// DecodeEvent validates event and returns its payload.
func DecodeEvent(event cloudevents.Event) (EventData, error) {
	var data EventData
	if !KnownEventType(event.Type()) {
		return data, fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type())
	}
	if err := event.Validate(); err != nil {
		return data, fmt.Errorf("CloudEvent validation failed: %w", err)
	}
	if err := event.DataAs(&data); err != nil {
		return data, fmt.Errorf("%w: %w", ErrEventDataInvalid, err)
	}
	return data, nil
}

func errText(err error) *string {
	s := "<nil>"
	if err != nil {
		s = err.Error()
	}
	return &s
}
