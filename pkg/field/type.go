// Package field defines the vocabulary the rest of the module is built on:
// names, modes and the FieldType rendering contract.
package field

import (
	"sort"

	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// RenderFunc renders a field for one mode.
type RenderFunc func(mode Mode, args ...any) (string, error)

// FieldType is a reusable rendering template dispatching on mode. Types are
// stateless by default; an instance may carry construction-time data, in
// which case Clone must deep-copy it.
type FieldType interface {
	Render(mode Mode, args ...any) (string, error)
	SupportedModes() []Mode
	Clone() FieldType
}

// Factory builds a FieldType on demand. Registries and render calls accept
// factories anywhere an instance is accepted and instantiate them lazily.
type Factory func() FieldType

// BaseType implements mode dispatch through an explicit routine table.
// Concrete field types compose a BaseType and register one routine per mode
// they support; registering the routine is what makes the mode supported.
type BaseType struct {
	routines map[Mode]RenderFunc
}

// NewBaseType returns a BaseType with no supported modes.
func NewBaseType() *BaseType {
	return &BaseType{routines: make(map[Mode]RenderFunc)}
}

// Handle registers the routine invoked for mode and returns the receiver
// for chaining. Nil routines are ignored.
func (b *BaseType) Handle(mode Mode, fn RenderFunc) *BaseType {
	if fn == nil || !mode.IsSet() {
		return b
	}
	b.routines[mode] = fn
	return b
}

// SupportedModes returns the modes with a registered routine, sorted for
// stable output.
func (b *BaseType) SupportedModes() []Mode {
	modes := make([]Mode, 0, len(b.routines))
	for mode := range b.routines {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Render validates the mode against the routine table and dispatches. An
// unsupported mode is the only failure at this layer and always propagates.
func (b *BaseType) Render(mode Mode, args ...any) (string, error) {
	fn, ok := b.routines[mode]
	if !ok {
		return "", &fielderr.UnsupportedModeError{Mode: mode.String()}
	}
	return fn(mode, args...)
}

// Clone copies the routine table. Routines themselves are shared.
func (b *BaseType) Clone() FieldType {
	routines := make(map[Mode]RenderFunc, len(b.routines))
	for mode, fn := range b.routines {
		routines[mode] = fn
	}
	return &BaseType{routines: routines}
}
