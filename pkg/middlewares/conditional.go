package middlewares

import (
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// Conditional runs the wrapped middleware only when the predicate accepts
// the argument list. A nil predicate always runs the wrapped middleware.
type Conditional struct {
	Inner middleware.Middleware
	When  func(args []any) bool
}

func (c Conditional) Call(args []any) ([]any, error) {
	if c.Inner == nil {
		return args, nil
	}
	if c.When != nil && !c.When(args) {
		return args, nil
	}
	return c.Inner.Call(args)
}

// String delegates to the wrapped middleware's representation, so
// validation failures name the real offender rather than the wrapper.
func (c Conditional) String() string {
	return middleware.Describe(c.Inner)
}
