package config

import (
	"reflect"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
	"github.com/goliatone/go-fieldkit/pkg/registry"
)

// Configuration aggregates the defaults a Builder starts from.
type Configuration struct {
	// FieldTypes resolves symbolic field type names.
	FieldTypes *registry.FieldTypes

	// FieldOptions is the base merged into every render call.
	FieldOptions *Options

	// DefinedMiddlewares is the authoritative ordered allow-list: only
	// middlewares of these types may run, and they run in this order.
	DefinedMiddlewares []reflect.Type

	// RegisteredMiddlewares resolves symbolic middleware names.
	RegisteredMiddlewares *middleware.Registry
}

// New returns a Configuration with empty registries, the default viewing
// mode and no middlewares.
func New() *Configuration {
	return &Configuration{
		FieldTypes:            registry.NewFieldTypes(),
		FieldOptions:          &Options{Mode: field.ModeViewing},
		RegisteredMiddlewares: middleware.NewRegistry(),
	}
}

// Permit appends middleware types to the defined list.
func (c *Configuration) Permit(types ...reflect.Type) {
	c.DefinedMiddlewares = append(c.DefinedMiddlewares, types...)
}

// PermitMiddlewares derives the defined types from representative
// instances, in the given order.
func (c *Configuration) PermitMiddlewares(ms ...middleware.Middleware) {
	c.DefinedMiddlewares = append(c.DefinedMiddlewares, middleware.Types(ms...)...)
}

// Clone produces an independent configuration. Field types, field options
// and registered middlewares are deep-copied; DefinedMiddlewares is copied
// as a slice of shared type references, since types are never duplicated,
// only referenced. The asymmetry is deliberate.
func (c *Configuration) Clone() *Configuration {
	clone := New()
	if c == nil {
		return clone
	}
	if c.FieldTypes != nil {
		clone.FieldTypes = c.FieldTypes.Clone()
	}
	if c.FieldOptions != nil {
		clone.FieldOptions = c.FieldOptions.Clone()
	}
	if c.RegisteredMiddlewares != nil {
		clone.RegisteredMiddlewares = c.RegisteredMiddlewares.Clone()
	}
	if len(c.DefinedMiddlewares) > 0 {
		clone.DefinedMiddlewares = make([]reflect.Type, len(c.DefinedMiddlewares))
		copy(clone.DefinedMiddlewares, c.DefinedMiddlewares)
	}
	return clone
}
