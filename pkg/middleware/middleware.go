// Package middleware defines the argument transformation pipeline applied
// to a render call before its field type runs. A middleware receives the
// call's argument list, conventionally (mode, rest...), and returns the
// list handed to the next middleware; the defined middleware list governs
// both which middlewares may run and the order they run in.
package middleware

import (
	"fmt"
	"reflect"
)

// Middleware transforms a render call's argument list. Implementations must
// return an ordered list; they may grow, shrink or rewrite it.
type Middleware interface {
	Call(args []any) ([]any, error)
}

// Func adapts a plain function to the Middleware interface.
type Func func(args []any) ([]any, error)

// Call executes the wrapped function when non-nil.
func (fn Func) Call(args []any) ([]any, error) {
	if fn == nil {
		return args, nil
	}
	return fn(args)
}

// Factory builds a middleware instance on demand. References held as
// factories are instantiated during normalization.
type Factory func() Middleware

// Ref is anything accepted where a middleware is expected: a ready
// instance, a Factory, or a field.Name registered with a Registry. All
// three normalize to an instance before execution.
type Ref = any

// Cloner is implemented by middlewares carrying mutable state that must not
// be shared across configuration layers. Stateless middlewares can skip it;
// they are shared by reference on clone.
type Cloner interface {
	Clone() Middleware
}

// TypeOf returns the identity used by defined middleware lists: the
// concrete type of the instance.
func TypeOf(m Middleware) reflect.Type {
	return reflect.TypeOf(m)
}

// Types builds a defined middleware list from representative instances.
func Types(ms ...Middleware) []reflect.Type {
	out := make([]reflect.Type, 0, len(ms))
	for _, m := range ms {
		if m == nil {
			continue
		}
		out = append(out, TypeOf(m))
	}
	return out
}

// Describe returns a human readable identification of a middleware for
// diagnostics. Stringers take precedence so wrapping middlewares can
// delegate to the middleware they wrap.
func Describe(m Middleware) string {
	if m == nil {
		return "<nil>"
	}
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return reflect.TypeOf(m).String()
}
