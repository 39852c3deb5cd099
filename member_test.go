package monitor

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variadicConstructor(prefix string, parts ...int) (testComponent, error) {
	return testComponent{Label: prefix}, nil
}

type valueReceiver struct{}

func (valueReceiver) Close() error { return nil }

func (valueReceiver) Pair(ctx context.Context, n int) (string, bool) { return "", false }

func TestConstructorOf(t *testing.T) {
	t.Run("Describes a package function", func(t *testing.T) {
		c, err := ConstructorOf(newTestComponent)
		require.NoError(t, err)

		assert.Equal(t, KindConstructor, c.Kind())
		assert.Equal(t, "github.com/GoCodeAlone/monitor.newTestComponent", c.Name())
		assert.Equal(t, "github.com/GoCodeAlone/monitor.newTestComponent(string) (*monitor.testComponent, error)", c.Signature())
		assert.Equal(t, c.Signature(), c.String())
		assert.Equal(t, reflect.TypeOf(newTestComponent), c.Type())
	})

	t.Run("Renders variadic parameters", func(t *testing.T) {
		c, err := ConstructorOf(variadicConstructor)
		require.NoError(t, err)
		assert.Equal(t, "github.com/GoCodeAlone/monitor.variadicConstructor(string, ...int) (monitor.testComponent, error)", c.Signature())
	})

	t.Run("Renders functions without results", func(t *testing.T) {
		c, err := ConstructorOf(func() {})
		require.NoError(t, err)
		assert.Contains(t, c.Name(), "TestConstructorOf")
		assert.True(t, len(c.Signature()) > 2)
		assert.Equal(t, "()", c.Signature()[len(c.Signature())-2:])
	})

	t.Run("Rejects non-functions", func(t *testing.T) {
		_, err := ConstructorOf("not a func")
		assert.ErrorIs(t, err, ErrNotAFunction)

		var nilFunc func() int
		_, err = ConstructorOf(nilFunc)
		assert.ErrorIs(t, err, ErrNotAFunction)

		_, err = ConstructorOf(nil)
		assert.ErrorIs(t, err, ErrNotAFunction)
	})
}

func TestMethodOf(t *testing.T) {
	t.Run("Pointer receiver", func(t *testing.T) {
		m, err := MethodOf(&testComponent{}, "Rename")
		require.NoError(t, err)

		assert.Equal(t, KindMethod, m.Kind())
		assert.Equal(t, "(*monitor.testComponent).Rename", m.Name())
		assert.Equal(t, "(*monitor.testComponent).Rename(string) string", m.Signature())
		assert.Equal(t, reflect.TypeOf(&testComponent{}), m.Receiver())
	})

	t.Run("Value receiver with several results", func(t *testing.T) {
		m, err := MethodOf(valueReceiver{}, "Pair")
		require.NoError(t, err)
		assert.Equal(t, "monitor.valueReceiver.Pair(context.Context, int) (string, bool)", m.Signature())
	})

	t.Run("Interface method", func(t *testing.T) {
		m, err := MethodByType(reflect.TypeFor[io.Closer](), "Close")
		require.NoError(t, err)
		assert.Equal(t, "io.Closer.Close() error", m.Signature())
	})

	t.Run("Missing method", func(t *testing.T) {
		_, err := MethodOf(&testComponent{}, "Missing")
		assert.ErrorIs(t, err, ErrMethodNotFound)
		assert.Contains(t, err.Error(), "Missing")
	})

	t.Run("Nil instance", func(t *testing.T) {
		_, err := MethodOf(nil, "Rename")
		assert.ErrorIs(t, err, ErrNilInstance)

		_, err = MethodByType(nil, "Rename")
		assert.ErrorIs(t, err, ErrNilInstance)
	})
}

func TestNamedMember(t *testing.T) {
	m := NamedMember(KindMethod, "Service.Start", "")
	assert.Equal(t, KindMethod, m.Kind())
	assert.Equal(t, "Service.Start", m.Name())
	assert.Equal(t, "Service.Start", m.Signature())

	m = NamedMember(KindConstructor, "NewService", "NewService(Config) *Service")
	assert.Equal(t, "NewService(Config) *Service", m.String())
}

func TestMemberKindString(t *testing.T) {
	assert.Equal(t, "constructor", KindConstructor.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "MemberKind(7)", MemberKind(7).String())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "github.com/GoCodeAlone/monitor.EventLogger", TypeName(reflect.TypeFor[EventLogger]()))
	assert.Equal(t, "github.com/GoCodeAlone/monitor.EventLogger", TypeName(reflect.TypeFor[**EventLogger]()))
	assert.Equal(t, "int", TypeName(reflect.TypeFor[int]()))
	assert.Equal(t, "[]string", TypeName(reflect.TypeFor[[]string]()))
	assert.Equal(t, "", TypeName(nil))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warn":    LevelWarn,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", Level(12).String())
}
