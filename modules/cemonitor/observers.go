package cemonitor

import (
	"context"

	"github.com/GoCodeAlone/monitor"
	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// FunctionalObserver adapts a function to the Observer interface.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver creates an observer that calls handler for each event.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) *FunctionalObserver {
	return &FunctionalObserver{id: id, handler: handler}
}

func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

func (f *FunctionalObserver) ObserverID() string {
	return f.id
}

// LoggingObserver writes received monitor events to a logger: failures at
// warn, everything else at debug.
type LoggingObserver struct {
	logger monitor.LeveledLogger
}

// NewLoggingObserver returns an observer writing to logger.
func NewLoggingObserver(logger monitor.LeveledLogger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

func (l *LoggingObserver) ObserverID() string {
	return "cemonitor.logging." + l.logger.Name()
}

func (l *LoggingObserver) OnEvent(_ context.Context, event cloudevents.Event) error {
	level := monitor.LevelDebug
	if IsFailure(event.Type()) {
		level = monitor.LevelWarn
	}
	if !l.logger.Enabled(level) {
		return nil
	}

	data, err := DecodeEvent(event)
	if err != nil {
		return err
	}
	args := []any{"type", event.Type(), "id", event.ID(), "member", data.Member}
	if data.Instance != "" {
		args = append(args, "instance", data.Instance)
	}
	if data.DurationMs > 0 {
		args = append(args, "durationMs", data.DurationMs)
	}
	if data.Error != "" {
		args = append(args, "reason", data.Error)
	}

	if level == monitor.LevelWarn {
		l.logger.Warn("Monitor event received", args...)
	} else {
		l.logger.Debug("Monitor event received", args...)
	}
	return nil
}
