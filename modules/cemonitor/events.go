package cemonitor

// Event types emitted by Monitor, one per lifecycle notification.
// Following CloudEvents conventions these use reverse domain notation.
const (
	EventTypeInstantiating       = "com.modular.monitor.instantiating"
	EventTypeInstantiated        = "com.modular.monitor.instantiated"
	EventTypeInstantiationFailed = "com.modular.monitor.instantiation.failed"
	EventTypeInvoking            = "com.modular.monitor.invoking"
	EventTypeInvoked             = "com.modular.monitor.invoked"
	EventTypeInvocationFailed    = "com.modular.monitor.invocation.failed"
)

// EventData is the JSON payload of every monitor event.
type EventData struct {
	Member     string `json:"member"`
	Kind       string `json:"kind"`
	Instance   string `json:"instance,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

// IsFailure reports whether eventType is one of the failure events.
func IsFailure(eventType string) bool {
	return eventType == EventTypeInstantiationFailed || eventType == EventTypeInvocationFailed
}

// KnownEventType reports whether eventType is emitted by Monitor.
func KnownEventType(eventType string) bool {
	switch eventType {
	case EventTypeInstantiating, EventTypeInstantiated, EventTypeInstantiationFailed,
		EventTypeInvoking, EventTypeInvoked, EventTypeInvocationFailed:
		return true
	default:
		return false
	}
}
