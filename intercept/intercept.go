// Package intercept calls traced methods by name and reports each call to
// an Observer.
//
// Traced method names use the JavaScript spelling ("texImage2D"); the Go
// method is the same name with its first letter upper-cased
// ("TexImage2D").
//
// A [Proxy] wraps a live object so every call made through it runs the
// original method first and then notifies the observer with the result.
// [Invoke] is the replay direction: it calls a method with decoded trace
// arguments, converting numbers and sequences to the parameter types.
package intercept

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/glrr/remap"
)

// ErrNoMethod is returned when a named method does not exist on the target.
var ErrNoMethod = errors.New("intercept: no such method")

// ErrNotInstalled is returned by Proxy.Call for a method that was not
// installed.
var ErrNotInstalled = errors.New("intercept: method not installed")

// ErrArgument is returned when an argument cannot be converted to the
// parameter type.
var ErrArgument = errors.New("intercept: bad argument")

// ErrObserver wraps an Observer error returned by Proxy.Call.
var ErrObserver = errors.New("intercept: observer failed")

// Observer receives every call made through a Proxy.
type Observer interface {
	OnCall(target any, method string, args []any, ret any) error
}

// GoName returns the Go method name for a traced method name.
func GoName(method string) string {
	r, size := utf8.DecodeRuneInString(method)
	if r == utf8.RuneError {
		return method
	}
	return string(unicode.ToUpper(r)) + method[size:]
}

// Lookup returns the bound method of target for a traced method name.
func Lookup(target any, method string) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s on nil target", ErrNoMethod, method)
	}
	m := rv.MethodByName(GoName(method))
	if !m.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %T has no method %s", ErrNoMethod, target, method)
	}
	return m, nil
}

// Invoke calls the traced method on target with args, converting each
// argument to the corresponding parameter type. It returns the method's
// first result, or nil for methods without results. A trailing error
// result is returned as the error.
func Invoke(target any, method string, args []any) (any, error) {
	m, err := Lookup(target, method)
	if err != nil {
		return nil, err
	}
	in, err := convertArgs(m.Type(), method, args)
	if err != nil {
		return nil, err
	}
	return unpack(m.Call(in))
}

func convertArgs(ft reflect.Type, method string, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, got %d", ErrArgument, method, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgument, method, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		v, err := Convert(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", method, i, err)
		}
		in[i] = v
	}
	return in, nil
}

var errorType = reflect.TypeFor[error]()

func unpack(out []reflect.Value) (any, error) {
	if len(out) > 0 && out[len(out)-1].Type() == errorType {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

// Convert converts a decoded trace value to type t. nil becomes the zero
// value; numbers convert between numeric kinds; []any converts element
// by element to a slice of t's element type. A remap.Unresolved sentinel
// is passed through where t accepts it and becomes the zero handle
// (nil pointer, nil interface) where it does not.
func Convert(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if _, ok := v.(remap.Unresolved); ok && nillable(t.Kind()) {
		return reflect.Zero(t), nil
	}

	if isNumber(rv.Kind()) && isNumber(t.Kind()) {
		return rv.Convert(t), nil
	}
	if rv.Kind() == reflect.Bool && t.Kind() == reflect.Bool {
		return rv.Convert(t), nil
	}
	if rv.Kind() == reflect.String && t.Kind() == reflect.String {
		return rv.Convert(t), nil
	}

	if t.Kind() == reflect.Slice && rv.Kind() == reflect.Slice {
		if rv.Type().ConvertibleTo(t) {
			return rv.Convert(t), nil
		}
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := range rv.Len() {
			e, err := Convert(rv.Index(i).Interface(), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out.Index(i).Set(e)
		}
		return out, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %T is not assignable to %s", ErrArgument, v, t)
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
