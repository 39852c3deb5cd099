// Package monitor provides component monitors: observers through which a
// dependency-injection container reports the lifecycle of the components it
// builds and calls.
//
// A container notifies its monitor before and after every constructor call
// and every method invocation, and when either fails. The EventLogger monitor
// forwards those notifications to a named, level-gated logger so that
// container diagnostics end up in whatever logging framework the application
// already uses:
//
//	mon := monitor.NewNamedEventLogger("app.container")
//	svc, err := monitor.Instantiate(mon, NewService, cfg)
//
// Loggers are resolved by name through a LoggerFactory. The default factory
// writes text records to stderr through log/slog; adapters for logrus, zap,
// zerolog and logr live under the adapter directory.
//
// # Severity
//
// Instantiating, Instantiated, Invoking and Invoked are logged at debug.
// InstantiationFailed and InvocationFailed are logged at warn with the
// original error attached under ErrorKey. A monitor checks the level before
// formatting anything, so disabled levels are nearly free.
package monitor

import "time"

// ComponentMonitor receives lifecycle notifications from a container.
// Implementations must not panic and must not alter the caller's error flow;
// the container remains responsible for handling the errors it reports.
type ComponentMonitor interface {
	// Instantiating is called before a constructor runs.
	Instantiating(ctor Member)

	// Instantiated is called after a constructor returned successfully.
	Instantiated(ctor Member, duration time.Duration)

	// InstantiationFailed is called when a constructor returned an error or panicked.
	InstantiationFailed(ctor Member, err error)

	// Invoking is called before a method runs on instance.
	Invoking(method Member, instance any)

	// Invoked is called after a method returned successfully.
	Invoked(method Member, instance any, duration time.Duration)

	// InvocationFailed is called when a method returned an error or panicked.
	InvocationFailed(method Member, instance any, err error)
}
