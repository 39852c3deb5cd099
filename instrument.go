package monitor

import (
	"fmt"
	"reflect"
	"time"
)

var errorType = reflect.TypeFor[error]()

// Instantiate calls the constructor ctor with args and reports the call to m.
// The first result is returned as the component. A trailing error result, a
// panic, or arguments that do not fit the signature are reported through
// InstantiationFailed and returned.
func Instantiate(m ComponentMonitor, ctor any, args ...any) (any, error) {
	if m == nil {
		m = NullMonitor{}
	}
	c, err := ConstructorOf(ctor)
	if err != nil {
		return nil, err
	}

	m.Instantiating(c)
	in, err := buildArgs(c.fn.Type(), args)
	if err != nil {
		m.InstantiationFailed(c, err)
		return nil, err
	}

	start := time.Now()
	out, err := call(c.fn, in)
	if err != nil {
		m.InstantiationFailed(c, err)
		return nil, err
	}
	m.Instantiated(c, time.Since(start))

	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// Invoke calls the exported method named method on instance with args and
// reports the call to m. Results are returned without a trailing error. A
// method that does not exist is returned as ErrMethodNotFound without any
// notification.
func Invoke(m ComponentMonitor, instance any, method string, args ...any) ([]any, error) {
	if m == nil {
		m = NullMonitor{}
	}
	desc, err := MethodOf(instance, method)
	if err != nil {
		return nil, err
	}
	fn := reflect.ValueOf(instance).MethodByName(method)

	m.Invoking(desc, instance)
	in, err := buildArgs(fn.Type(), args)
	if err != nil {
		m.InvocationFailed(desc, instance, err)
		return nil, err
	}

	start := time.Now()
	out, err := call(fn, in)
	if err != nil {
		m.InvocationFailed(desc, instance, err)
		return nil, err
	}
	m.Invoked(desc, instance, time.Since(start))
	return out, nil
}

// call runs fn and splits off a trailing error result. Panics become errors.
func call(fn reflect.Value, in []reflect.Value) (results []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("%w: %v", ErrCallPanicked, r)
		}
	}()

	out := fn.Call(in)
	ft := fn.Type()
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		last := out[n-1]
		out = out[:n-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}

	results = make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// buildArgs converts args to reflect values assignable to ft's inputs.
func buildArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrArgumentMismatch, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrArgumentMismatch, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var target reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			target = ft.In(numIn - 1).Elem()
		} else {
			target = ft.In(i)
		}

		if arg == nil {
			if !nillable(target) {
				return nil, fmt.Errorf("%w: argument %d: nil is not a valid %s", ErrArgumentMismatch, i, target)
			}
			in[i] = reflect.Zero(target)
			continue
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(target) {
			return nil, fmt.Errorf("%w: argument %d: %s is not assignable to %s", ErrArgumentMismatch, i, v.Type(), target)
		}
		in[i] = v
	}
	return in, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
