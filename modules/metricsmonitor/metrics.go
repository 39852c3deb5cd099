// Package metricsmonitor provides a component monitor that records
// Prometheus metrics for constructor and method calls.
package metricsmonitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/GoCodeAlone/monitor"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	NameSpace = "modular"
	Subsystem = "monitor"
)

// ErrAlreadyRegistered is returned when the collectors already exist in the registerer.
var ErrAlreadyRegistered = errors.New("monitor metrics already registered")

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Monitor is a monitor.ComponentMonitor that counts calls and records their
// durations. Failed calls count towards the failure outcome but record no
// duration since the monitor is not told how long they took.
type Monitor struct {
	// Instantiations counts finished constructor calls by member and outcome
	Instantiations *prometheus.CounterVec

	// Invocations counts finished method calls by member and outcome
	Invocations *prometheus.CounterVec

	// InstantiationTime is a summary of successful constructor call durations
	InstantiationTime *prometheus.SummaryVec

	// InvocationTime is a summary of successful method call durations
	InvocationTime *prometheus.SummaryVec

	// InFlight is how many constructor or method calls are running
	InFlight *prometheus.GaugeVec
}

var _ monitor.ComponentMonitor = (*Monitor)(nil)

// New creates the collectors and registers them with reg. A nil reg uses a
// fresh private registry.
func New(reg prometheus.Registerer) (*Monitor, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Monitor{
		Instantiations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(NameSpace, Subsystem, "instantiations_total"),
			Help: "How many constructor calls finished, by outcome",
		}, []string{"member", "outcome"}),

		Invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(NameSpace, Subsystem, "invocations_total"),
			Help: "How many method calls finished, by outcome",
		}, []string{"member", "outcome"}),

		InstantiationTime: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name: prometheus.BuildFQName(NameSpace, Subsystem, "instantiation_duration_seconds"),
			Help: "Time taken by successful constructor calls",
		}, []string{"member"}),

		InvocationTime: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name: prometheus.BuildFQName(NameSpace, Subsystem, "invocation_duration_seconds"),
			Help: "Time taken by successful method calls",
		}, []string{"member"}),

		InFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName(NameSpace, Subsystem, "in_flight"),
			Help: "How many constructor or method calls are running",
		}, []string{"kind"}),
	}

	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				return nil, fmt.Errorf("%w: %w", ErrAlreadyRegistered, err)
			}
			return nil, err
		}
	}
	return m, nil
}

func (m *Monitor) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Instantiations, m.Invocations, m.InstantiationTime, m.InvocationTime, m.InFlight}
}

func label(member monitor.Member) string {
	if member == nil {
		return "<nil>"
	}
	return member.Name()
}

func (m *Monitor) Instantiating(monitor.Member) {
	m.InFlight.WithLabelValues(monitor.KindConstructor.String()).Inc()
}

func (m *Monitor) Instantiated(ctor monitor.Member, duration time.Duration) {
	m.InFlight.WithLabelValues(monitor.KindConstructor.String()).Dec()
	m.Instantiations.WithLabelValues(label(ctor), OutcomeSuccess).Inc()
	m.InstantiationTime.WithLabelValues(label(ctor)).Observe(duration.Seconds())
}

func (m *Monitor) InstantiationFailed(ctor monitor.Member, _ error) {
	m.InFlight.WithLabelValues(monitor.KindConstructor.String()).Dec()
	m.Instantiations.WithLabelValues(label(ctor), OutcomeFailure).Inc()
}

func (m *Monitor) Invoking(monitor.Member, any) {
	m.InFlight.WithLabelValues(monitor.KindMethod.String()).Inc()
}

func (m *Monitor) Invoked(method monitor.Member, _ any, duration time.Duration) {
	m.InFlight.WithLabelValues(monitor.KindMethod.String()).Dec()
	m.Invocations.WithLabelValues(label(method), OutcomeSuccess).Inc()
	m.InvocationTime.WithLabelValues(label(method)).Observe(duration.Seconds())
}

func (m *Monitor) InvocationFailed(method monitor.Member, _ any, _ error) {
	m.InFlight.WithLabelValues(monitor.KindMethod.String()).Dec()
	m.Invocations.WithLabelValues(label(method), OutcomeFailure).Inc()
}
