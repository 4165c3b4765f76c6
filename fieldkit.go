// Package fieldkit renders a logical field differently depending on a
// runtime mode (viewing vs. editing), threading each call's arguments
// through a validated middleware stack governed by layered, copy-on-write
// configuration. This root package re-exports the high-level API; the
// building blocks live under pkg/.
package fieldkit

import (
	"github.com/goliatone/go-fieldkit/pkg/builder"
	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// Builder orchestrates render calls against a private configuration copy.
type Builder = builder.Builder

// Surface is the capability set extension shells delegate to.
type Surface = builder.Surface

// Configuration aggregates the defaults a builder starts from.
type Configuration = config.Configuration

// Options is the per-call render configuration (mode + middlewares).
type Options = config.Options

// FieldType is the polymorphic rendering contract.
type FieldType = field.FieldType

// Middleware transforms a render call's argument list.
type Middleware = middleware.Middleware

// Mode selects the rendering behavior for one call.
type Mode = field.Mode

// Name is the symbol-like identifier used by registries.
type Name = field.Name

const (
	ModeViewing = field.ModeViewing
	ModeEditing = field.ModeEditing
)

// Err is the root error every failure in this module wraps.
var Err = fielderr.Err

// New constructs a builder from the process-wide configuration.
func New(opts ...builder.Option) *Builder {
	return builder.New(opts...)
}

// Configure mutates the process-wide configuration; call it in application
// setup before builders are constructed.
func Configure(fn func(*Configuration)) {
	config.Configure(fn)
}

// Reset replaces the process-wide configuration with pristine defaults.
func Reset() {
	config.Reset()
}

// Render is a one-shot helper: it builds a builder from the current global
// configuration and renders a single field.
func Render(ref any, args ...any) (string, error) {
	return builder.New().Field(ref, args...)
}
