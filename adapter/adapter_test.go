package adapter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/GoCodeAlone/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactoryBackends(t *testing.T) {
	backends := []string{
		monitor.BackendSlog,
		monitor.BackendLogrus,
		monitor.BackendZap,
		monitor.BackendZerolog,
		monitor.BackendLogr,
	}
	for _, backend := range backends {
		for _, format := range []string{monitor.FormatText, monitor.FormatJSON} {
			t.Run(backend+"/"+format, func(t *testing.T) {
				var buf bytes.Buffer
				cfg := &monitor.Config{Backend: backend, Level: "debug", Format: format, LoggerName: "app.container"}
				factory, err := NewFactory(cfg, &buf)
				require.NoError(t, err)

				el := monitor.NewNamedEventLogger(cfg.Name(), monitor.WithFactory(factory))
				assert.Equal(t, "app.container", el.Logger().Name())
				assert.True(t, el.Logger().Enabled(monitor.LevelDebug))

				member := monitor.NamedMember(monitor.KindMethod, "Service.Start", "")
				el.Invoking(member, "svc")
				el.InvocationFailed(member, "svc", errors.New("port in use"))

				out := buf.String()
				assert.Contains(t, out, "monitor: invoking Service.Start on svc")
				assert.Contains(t, out, "port in use")
			})
		}
	}
}

func TestNewFactoryLevelGate(t *testing.T) {
	for _, backend := range []string{monitor.BackendSlog, monitor.BackendLogrus, monitor.BackendZap, monitor.BackendZerolog} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			factory, err := NewFactory(&monitor.Config{Backend: backend, Level: "warn", Format: "text"}, &buf)
			require.NoError(t, err)

			l := factory.GetLogger("gate")
			assert.False(t, l.Enabled(monitor.LevelDebug))
			assert.False(t, l.Enabled(monitor.LevelInfo))
			assert.True(t, l.Enabled(monitor.LevelWarn))

			el := monitor.NewEventLogger(l)
			el.Instantiating(monitor.NamedMember(monitor.KindConstructor, "NewService", ""))
			assert.Empty(t, buf.String())
		})
	}
}

func TestNewFactoryLogrDebugCutoff(t *testing.T) {
	var buf bytes.Buffer
	factory, err := NewFactory(&monitor.Config{Backend: monitor.BackendLogr, Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)
	l := factory.GetLogger("logr")
	assert.False(t, l.Enabled(monitor.LevelDebug))
	assert.True(t, l.Enabled(monitor.LevelInfo))
}

func TestNewFactoryErrors(t *testing.T) {
	_, err := NewFactory(nil, nil)
	assert.ErrorIs(t, err, monitor.ErrConfigNil)

	_, err = NewFactory(&monitor.Config{Backend: "log4j", Level: "info", Format: "text"}, nil)
	assert.ErrorIs(t, err, monitor.ErrUnknownBackend)

	_, err = NewFactory(&monitor.Config{Backend: "slog", Level: "chatty", Format: "text"}, nil)
	assert.ErrorIs(t, err, monitor.ErrInvalidLevel)
}

func TestNewFactoryDefaultsToStderr(t *testing.T) {
	factory, err := NewFactory(monitor.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, monitor.DefaultLoggerName, factory.GetLogger(monitor.DefaultLoggerName).Name())
}
