package monitor

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// MemberKind distinguishes constructors from methods.
type MemberKind int

const (
	KindConstructor MemberKind = iota
	KindMethod
)

func (k MemberKind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindMethod:
		return "method"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// Member describes a constructor or method a container is about to call, or
// has called. Monitors treat it as an opaque, printable token; String returns
// the same text as Signature.
type Member interface {
	fmt.Stringer

	// Kind reports whether the member is a constructor or a method.
	Kind() MemberKind

	// Name returns the qualified name without parameter types.
	Name() string

	// Signature returns the name followed by parameter and result types.
	Signature() string
}

// Constructor is a Member backed by a Go function that produces a component.
type Constructor struct {
	name string
	fn   reflect.Value
}

// ConstructorOf describes fn, which must be a non-nil function value.
func ConstructorOf(fn any) (*Constructor, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}

	name := "func"
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		name = rf.Name()
	}
	return &Constructor{name: name, fn: v}, nil
}

func (c *Constructor) Kind() MemberKind { return KindConstructor }

func (c *Constructor) Name() string { return c.name }

func (c *Constructor) Signature() string {
	return c.name + formatFuncType(c.fn.Type(), 0)
}

func (c *Constructor) String() string { return c.Signature() }

// Type returns the function type of the constructor.
func (c *Constructor) Type() reflect.Type { return c.fn.Type() }

// Method is a Member backed by a method of a concrete type or interface.
type Method struct {
	receiver reflect.Type
	method   reflect.Method
}

// MethodOf describes the exported method called name on instance's dynamic type.
func MethodOf(instance any, name string) (*Method, error) {
	if instance == nil {
		return nil, ErrNilInstance
	}
	return MethodByType(reflect.TypeOf(instance), name)
}

// MethodByType describes the exported method called name on t.
func MethodByType(t reflect.Type, name string) (*Method, error) {
	if t == nil {
		return nil, ErrNilInstance
	}
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, t, name)
	}
	return &Method{receiver: t, method: m}, nil
}

func (m *Method) Kind() MemberKind { return KindMethod }

func (m *Method) Name() string {
	recv := m.receiver.String()
	if m.receiver.Kind() == reflect.Pointer {
		recv = "(" + recv + ")"
	}
	return recv + "." + m.method.Name
}

func (m *Method) Signature() string {
	// Methods of concrete types carry the receiver as their first input.
	skip := 1
	if m.receiver.Kind() == reflect.Interface {
		skip = 0
	}
	return m.Name() + formatFuncType(m.method.Type, skip)
}

func (m *Method) String() string { return m.Signature() }

// Receiver returns the type the method was looked up on.
func (m *Method) Receiver() reflect.Type { return m.receiver }

type namedMember struct {
	kind      MemberKind
	name      string
	signature string
}

// NamedMember builds a Member for callers without a reflective handle on the
// function. An empty signature defaults to the name.
func NamedMember(kind MemberKind, name, signature string) Member {
	if signature == "" {
		signature = name
	}
	return namedMember{kind: kind, name: name, signature: signature}
}

func (n namedMember) Kind() MemberKind { return n.kind }
func (n namedMember) Name() string { return n.name }
func (n namedMember) Signature() string { return n.signature }
func (n namedMember) String() string { return n.signature }

// formatFuncType renders "(in...) out" for ft, dropping the first skip inputs.
func formatFuncType(ft reflect.Type, skip int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := skip; i < ft.NumIn(); i++ {
		if i > skip {
			b.WriteString(", ")
		}
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			b.WriteString("..." + ft.In(i).Elem().String())
			continue
		}
		b.WriteString(ft.In(i).String())
	}
	b.WriteByte(')')

	switch ft.NumOut() {
	case 0:
	case 1:
		b.WriteString(" " + ft.Out(0).String())
	default:
		outs := make([]string, ft.NumOut())
		for i := range outs {
			outs[i] = ft.Out(i).String()
		}
		b.WriteString(" (" + strings.Join(outs, ", ") + ")")
	}
	return b.String()
}

// TypeName returns the fully qualified name of t ("import/path.Type"),
// looking through pointers. Unnamed types fall back to their reflect string.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
