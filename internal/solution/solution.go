// Package solution loads a day's solution module and exposes its optional
// Part1 and Part2 entry points.
package solution

import (
	"context"
	"fmt"
	"reflect"
)

// Entry point names a solution may define.
const (
	Part1Name = "Part1"
	Part2Name = "Part2"
)

// Part is a loaded entry point. It returns the part's result, which may be nil.
type Part func() (any, error)

// Module is a loaded solution. A nil Part means the solution does not define it.
type Module struct {
	Part1 Part
	Part2 Part
}

// Loader loads the solution module stored at path.
type Loader interface {
	Load(ctx context.Context, path string) (*Module, error)
}

// wrapFunc adapts a nullary function value into a Part. Supported shapes are
// func() T and func() (T, error); a returned channel is received from so that
// asynchronous work finishes before the Part returns. Panics become errors.
func wrapFunc(name string, fn reflect.Value) (Part, error) {
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s must be a function, got %s", name, fn.Kind())
	}
	typ := fn.Type()
	if typ.NumIn() != 0 {
		return nil, fmt.Errorf("%s must not take arguments", name)
	}
	errorType := reflect.TypeOf((*error)(nil)).Elem()
	switch typ.NumOut() {
	case 0, 1:
	case 2:
		if !typ.Out(1).Implements(errorType) {
			return nil, fmt.Errorf("%s: second result must be an error", name)
		}
	default:
		return nil, fmt.Errorf("%s must return a value or (value, error)", name)
	}

	return func() (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = nil
				err = fmt.Errorf("%s panicked: %v", name, r)
			}
		}()
		return unpack(fn.Call(nil))
	}, nil
}

// unpack converts call results into (value, error).
func unpack(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	if len(out) == 2 && !isNil(out[1]) {
		return nil, out[1].Interface().(error)
	}

	v := out[0]
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Chan {
		if v.IsNil() {
			return nil, nil
		}
		received, ok := v.Recv()
		if !ok {
			return nil, nil
		}
		v = received
	}
	if isNil(v) {
		return nil, nil
	}
	return v.Interface(), nil
}

// isNil reports whether v is invalid or a nil reference value.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// FromFuncs builds a Module from plain Go functions. Either may be nil.
func FromFuncs(part1, part2 func() any) *Module {
	m := &Module{}
	if part1 != nil {
		m.Part1, _ = wrapFunc(Part1Name, reflect.ValueOf(part1))
	}
	if part2 != nil {
		m.Part2, _ = wrapFunc(Part2Name, reflect.ValueOf(part2))
	}
	return m
}
