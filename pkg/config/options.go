// Package config carries the layered configuration governing render calls:
// per-call Options, the Configuration aggregate builders copy from, and the
// process-wide defaults.
package config

import (
	"fmt"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// Map is a loose per-call option bag. Recognized keys are "mode" (string or
// field.Mode) and "middlewares" (a middleware reference or a list of them);
// unrecognized keys are ignored.
type Map map[string]any

// Options is the merged configuration governing one render call: the mode
// to render in plus the middleware references to run. Options are created
// fresh per call, merged with a base from configuration and discarded when
// the call returns.
type Options struct {
	// Mode selects the rendering behavior. Empty means unset, deferring to
	// the base the options are merged into.
	Mode field.Mode

	// Middlewares lists references in the order they were accumulated. The
	// stack re-sorts them into defined order before running.
	Middlewares []middleware.Ref
}

// NewOptions returns empty options: unset mode, no middlewares.
func NewOptions() *Options { return &Options{} }

// OptionsFrom builds Options from a loose bag, normalising string modes to
// their canonical identifier form.
func OptionsFrom(bag Map) (*Options, error) {
	opts := NewOptions()
	if raw, ok := bag["mode"]; ok && raw != nil {
		switch v := raw.(type) {
		case field.Mode:
			opts.Mode = v
		case string:
			opts.Mode = field.ParseMode(v)
		default:
			return nil, fmt.Errorf("config: mode must be a string or field.Mode, got %T", raw)
		}
	}
	if raw, ok := bag["middlewares"]; ok && raw != nil {
		opts.Middlewares = append(opts.Middlewares, middlewareRefs(raw)...)
	}
	return opts, nil
}

func middlewareRefs(raw any) []middleware.Ref {
	switch v := raw.(type) {
	case []middleware.Ref:
		out := make([]middleware.Ref, len(v))
		copy(out, v)
		return out
	case []middleware.Middleware:
		out := make([]middleware.Ref, 0, len(v))
		for _, m := range v {
			out = append(out, m)
		}
		return out
	case []field.Name:
		out := make([]middleware.Ref, 0, len(v))
		for _, name := range v {
			out = append(out, name)
		}
		return out
	case []string:
		out := make([]middleware.Ref, 0, len(v))
		for _, name := range v {
			out = append(out, field.Name(name))
		}
		return out
	default:
		return []middleware.Ref{raw}
	}
}

// Clone deep-copies the middleware list element-wise. References that
// implement middleware.Cloner are copied; factories, names and stateless
// instances are shared by reference.
func (o *Options) Clone() *Options {
	if o == nil {
		return NewOptions()
	}
	clone := &Options{Mode: o.Mode}
	if len(o.Middlewares) > 0 {
		clone.Middlewares = make([]middleware.Ref, 0, len(o.Middlewares))
		for _, ref := range o.Middlewares {
			clone.Middlewares = append(clone.Middlewares, cloneRef(ref))
		}
	}
	return clone
}

// Merge returns new Options combining the receiver as base with overlay:
// mode is overridden when the overlay sets one, middleware lists
// concatenate base-then-overlay. Neither input is mutated and the overlay
// is cloned first, so its list is never aliased into the result.
func (o *Options) Merge(overlay *Options) *Options {
	merged := o.Clone()
	merged.MergeInPlace(overlay)
	return merged
}

// MergeInPlace applies overlay onto the receiver with Merge semantics.
func (o *Options) MergeInPlace(overlay *Options) {
	if overlay == nil {
		return
	}
	overlay = overlay.Clone()
	if overlay.Mode.IsSet() {
		o.Mode = overlay.Mode
	}
	o.Middlewares = append(o.Middlewares, overlay.Middlewares...)
}

func cloneRef(ref middleware.Ref) middleware.Ref {
	if c, ok := ref.(middleware.Cloner); ok {
		return c.Clone()
	}
	return ref
}
