package middleware

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
	"github.com/goliatone/go-fieldkit/pkg/registry"
)

// Registry stores middlewares by name for symbolic reference. A stored
// value must be a Middleware instance or a Factory.
type Registry struct {
	*registry.Registry
}

// NewRegistry creates an empty middleware registry.
func NewRegistry() *Registry {
	return &Registry{Registry: registry.New(
		registry.WithValueValidator(validateValue),
		registry.WithValueCloner(cloneValue),
	)}
}

// Resolve returns a ready instance for name, invoking registered factories.
func (r *Registry) Resolve(name field.Name) (Middleware, error) {
	value, ok := r.Find(name)
	if !ok {
		return nil, &fielderr.UnregisteredMiddlewareError{Name: name.String()}
	}
	return instantiate(value)
}

// Clone produces an independent middleware registry.
func (r *Registry) Clone() *Registry {
	return &Registry{Registry: r.Registry.Clone()}
}

func validateValue(value any) error {
	switch value.(type) {
	case Middleware, Factory, func() Middleware:
		return nil
	default:
		return &fielderr.InvalidMiddlewareError{Value: value}
	}
}

// cloneValue deep-copies stateful instances; factories and stateless
// instances are shared by reference.
func cloneValue(value any) any {
	if c, ok := value.(Cloner); ok {
		return c.Clone()
	}
	return value
}
