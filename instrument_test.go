package monitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errNoConfig = errors.New("no config")

const mockAnything = mock.Anything

type service struct {
	name  string
	calls int
}

func (s *service) String() string { return "service(" + s.name + ")" }

func (s *service) Start(prefix string, extra ...string) (string, error) {
	s.calls++
	if prefix == "" {
		return "", errNoConfig
	}
	return prefix + s.name, nil
}

func (s *service) Crash() {
	panic("crashed")
}

func newService(name string) (*service, error) {
	if name == "" {
		return nil, errNoConfig
	}
	return &service{name: name}, nil
}

func newServiceNoError(opts map[string]string) *service {
	return &service{name: opts["name"]}
}

func TestInstantiate(t *testing.T) {
	t.Run("Reports a successful construction", func(t *testing.T) {
		logger := NewTestLogger("instantiate", LevelDebug)
		svc, err := Instantiate(NewEventLogger(logger), newService, "db")
		require.NoError(t, err)
		require.IsType(t, &service{}, svc)
		assert.Equal(t, "db", svc.(*service).name)

		entries := logger.GetEntries()
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0].Message, "monitor: instantiating")
		assert.Contains(t, entries[1].Message, "monitor: instantiated")
		assert.Contains(t, entries[1].Message, "newService(string) (*monitor.service, error)")
	})

	t.Run("Reports a constructor error", func(t *testing.T) {
		logger := NewTestLogger("instantiate", LevelDebug)
		svc, err := Instantiate(NewEventLogger(logger), newService, "")
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, errNoConfig)

		failed := logger.FindEntry("warn", "instantiation failed")
		require.NotNil(t, failed)
		assert.Same(t, errNoConfig, argsToMap(failed.Args)[ErrorKey])
	})

	t.Run("Nil arguments become zero values", func(t *testing.T) {
		svc, err := Instantiate(nil, newServiceNoError, nil)
		require.NoError(t, err)
		assert.Equal(t, "", svc.(*service).name)
	})

	t.Run("Argument mismatches are reported", func(t *testing.T) {
		logger := NewTestLogger("instantiate", LevelDebug)
		mon := NewEventLogger(logger)

		_, err := Instantiate(mon, newService)
		assert.ErrorIs(t, err, ErrArgumentMismatch)

		_, err = Instantiate(mon, newService, 42)
		assert.ErrorIs(t, err, ErrArgumentMismatch)

		_, err = Instantiate(mon, newService, nil)
		assert.ErrorIs(t, err, ErrArgumentMismatch)

		assert.Len(t, logger.GetEntries(), 6)
	})

	t.Run("Panics become failures", func(t *testing.T) {
		logger := NewTestLogger("instantiate", LevelDebug)
		_, err := Instantiate(NewEventLogger(logger), func() *service { panic("nope") })
		assert.ErrorIs(t, err, ErrCallPanicked)
		assert.NotNil(t, logger.FindEntry("warn", "instantiation failed"))
	})

	t.Run("Constructors without results return nil", func(t *testing.T) {
		v, err := Instantiate(NullMonitor{}, func() {})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("Non-functions are rejected before any notification", func(t *testing.T) {
		logger := NewTestLogger("instantiate", LevelDebug)
		_, err := Instantiate(NewEventLogger(logger), "newService")
		assert.ErrorIs(t, err, ErrNotAFunction)
		assert.Empty(t, logger.GetEntries())
	})
}

func TestInvoke(t *testing.T) {
	t.Run("Reports a successful invocation", func(t *testing.T) {
		logger := NewTestLogger("invoke", LevelDebug)
		svc := &service{name: "db"}

		out, err := Invoke(NewEventLogger(logger), svc, "Start", "primary-", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, []any{"primary-db"}, out)
		assert.Equal(t, 1, svc.calls)

		entries := logger.GetEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, "monitor: invoking (*monitor.service).Start(string, ...string) (string, error) on service(db)", entries[0].Message)
		assert.Contains(t, entries[1].Message, "on service(db) [")
	})

	t.Run("Reports a returned error", func(t *testing.T) {
		logger := NewTestLogger("invoke", LevelWarn)
		svc := &service{name: "db"}

		_, err := Invoke(NewEventLogger(logger), svc, "Start", "")
		assert.ErrorIs(t, err, errNoConfig)

		entries := logger.GetEntries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "invocation failed")
		assert.Contains(t, entries[0].Message, "service(db)")
		assert.Same(t, errNoConfig, argsToMap(entries[0].Args)[ErrorKey])
	})

	t.Run("Reports a panic", func(t *testing.T) {
		mon := &MockMonitor{}
		svc := &service{name: "db"}
		mon.On("Invoking", mockAnything, svc).Once()
		mon.On("InvocationFailed", mockAnything, svc, mockAnything).Once()

		_, err := Invoke(mon, svc, "Crash")
		assert.ErrorIs(t, err, ErrCallPanicked)
		assert.Contains(t, err.Error(), "crashed")
		mon.AssertExpectations(t)
	})

	t.Run("Missing methods are not reported", func(t *testing.T) {
		mon := &MockMonitor{}
		_, err := Invoke(mon, &service{}, "Stop")
		assert.ErrorIs(t, err, ErrMethodNotFound)
		mon.AssertNotCalled(t, "Invoking", mockAnything, mockAnything)

		_, err = Invoke(mon, nil, "Stop")
		assert.ErrorIs(t, err, ErrNilInstance)
	})

	t.Run("Too few arguments", func(t *testing.T) {
		_, err := Invoke(nil, &service{}, "Start")
		assert.ErrorIs(t, err, ErrArgumentMismatch)
	})
}
