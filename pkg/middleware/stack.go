package middleware

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// Stack validates and executes a requested middleware list against the
// defined middleware list. The defined list is authoritative for both
// legality and execution order: requested middlewares run in defined order
// regardless of how they were accumulated across configuration layers, so
// side effects on the argument list are deterministic and caller
// independent.
type Stack struct {
	defined   []reflect.Type
	requested []Middleware
}

// NewStack builds a stack over the given defined list and already
// normalized middleware instances.
func NewStack(defined []reflect.Type, requested []Middleware) *Stack {
	return &Stack{defined: defined, requested: requested}
}

// Validate checks that every requested middleware's concrete type appears
// in the defined list. The error names the offending middleware in human
// readable form; this is part of the contract, not a formatting detail.
func (s *Stack) Validate() error {
	for _, m := range s.requested {
		if s.definedIndex(TypeOf(m)) < 0 {
			return &fielderr.UnpermittedMiddlewareError{Middleware: Describe(m)}
		}
	}
	return nil
}

// Call validates the stack and threads args through it in canonical order,
// returning the final argument list.
func (s *Stack) Call(args []any) ([]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	current := args
	for _, m := range s.ordered() {
		next, err := m.Call(current)
		if err != nil {
			return nil, fmt.Errorf("middleware: %s: %w", Describe(m), err)
		}
		current = next
	}
	return current, nil
}

// ordered re-sorts the requested middlewares into defined order. Request
// order is kept stable among middlewares of the same type.
func (s *Stack) ordered() []Middleware {
	if len(s.requested) < 2 {
		return s.requested
	}
	out := make([]Middleware, len(s.requested))
	copy(out, s.requested)
	sort.SliceStable(out, func(i, j int) bool {
		return s.definedIndex(TypeOf(out[i])) < s.definedIndex(TypeOf(out[j]))
	})
	return out
}

func (s *Stack) definedIndex(t reflect.Type) int {
	for i, dt := range s.defined {
		if dt == t {
			return i
		}
	}
	return -1
}
