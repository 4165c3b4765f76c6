// Package builder orchestrates render calls: it merges per-call options
// into its private configuration, runs the middleware stack over the
// argument list, resolves the field type and invokes it.
package builder

import (
	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// RenderFunc renders a field bound by an accessor.
type RenderFunc func(args ...any) (string, error)

// Option customises builder construction.
type Option func(*Builder)

// WithConfiguration injects a ready configuration instead of cloning the
// process-wide one. The builder takes ownership of cfg.
func WithConfiguration(cfg *config.Configuration) Option {
	return func(b *Builder) {
		if cfg != nil {
			b.config = cfg
		}
	}
}

// Builder is the per-render-session orchestrator. It holds a private deep
// copy of the process-wide configuration taken at construction time, so
// later global edits never reach it. Builders are request-scoped and not
// safe for concurrent use without external synchronization.
type Builder struct {
	config *config.Configuration
}

// New constructs a builder from the process-wide configuration unless an
// option supplies one.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.config == nil {
		b.config = config.CloneGlobal()
	}
	return b
}

// Config exposes the builder's configuration.
func (b *Builder) Config() *config.Configuration { return b.config }

// Configure hands the configuration to fn for in-place mutation.
func (b *Builder) Configure(fn func(*config.Configuration)) {
	if fn != nil {
		fn(b.config)
	}
}

// Field renders one field. The first argument after ref may be a
// *config.Options overlay or a config.Map bag; every remaining argument is
// field input. The effective options are the configuration's field options
// merged with the overlay; the middleware stack then transforms
// (mode, input...) before the resolved field type renders it.
func (b *Builder) Field(ref any, args ...any) (string, error) {
	overlay, rest, err := splitOptions(args)
	if err != nil {
		return "", err
	}
	effective := b.config.FieldOptions.Merge(overlay)

	input := make([]any, 0, len(rest)+1)
	input = append(input, effective.Mode)
	input = append(input, rest...)

	instances, err := middleware.Normalize(effective.Middlewares, b.config.RegisteredMiddlewares)
	if err != nil {
		return "", err
	}
	output, err := middleware.NewStack(b.config.DefinedMiddlewares, instances).Call(input)
	if err != nil {
		return "", err
	}

	resolved, err := b.resolve(ref)
	if err != nil {
		return "", err
	}

	mode := effective.Mode
	fieldArgs := output
	if len(output) > 0 {
		if m, ok := output[0].(field.Mode); ok {
			mode = m
			fieldArgs = output[1:]
		}
	}
	return resolved.Render(mode, fieldArgs...)
}

// Accessor returns a render function bound to a registered field type name.
// Resolution happens per call, so accessors pick up later registrations and
// fail with UnregisteredFieldTypeError for names that are still unknown.
func (b *Builder) Accessor(name field.Name) RenderFunc {
	return func(args ...any) (string, error) {
		return b.Field(name, args...)
	}
}

// Clone produces a builder with its own configuration copy.
func (b *Builder) Clone() *Builder {
	return &Builder{config: b.config.Clone()}
}

// Scoped runs fn against a duplicated builder whose field options have the
// given overlay merged in. The receiver is never mutated; nothing the
// scoped builder does leaks back after fn returns.
func (b *Builder) Scoped(opts *config.Options, fn func(*Builder) error) error {
	if fn == nil {
		return nil
	}
	scoped := b.Clone()
	scoped.config.FieldOptions.MergeInPlace(opts)
	return fn(scoped)
}

// WithMiddlewares is Scoped with only a middleware list.
func (b *Builder) WithMiddlewares(refs []middleware.Ref, fn func(*Builder) error) error {
	return b.Scoped(&config.Options{Middlewares: refs}, fn)
}

func splitOptions(args []any) (*config.Options, []any, error) {
	if len(args) == 0 {
		return config.NewOptions(), nil, nil
	}
	switch v := args[0].(type) {
	case *config.Options:
		return v, args[1:], nil
	case config.Options:
		return &v, args[1:], nil
	case config.Map:
		opts, err := config.OptionsFrom(v)
		if err != nil {
			return nil, nil, err
		}
		return opts, args[1:], nil
	case map[string]any:
		opts, err := config.OptionsFrom(config.Map(v))
		if err != nil {
			return nil, nil, err
		}
		return opts, args[1:], nil
	default:
		return config.NewOptions(), args, nil
	}
}

// resolve coerces a field type reference into an instance: instances pass
// through, factories are invoked, names are looked up (a registered factory
// is also invoked). Anything else is invalid.
func (b *Builder) resolve(ref any) (field.FieldType, error) {
	switch v := ref.(type) {
	case field.FieldType:
		return v, nil
	case field.Factory:
		return instantiate(v)
	case func() field.FieldType:
		return instantiate(v)
	case field.Name:
		return b.config.FieldTypes.Resolve(v)
	case string:
		return b.config.FieldTypes.Resolve(field.Name(v))
	default:
		return nil, &fielderr.InvalidFieldTypeError{Value: ref}
	}
}

func instantiate(factory func() field.FieldType) (field.FieldType, error) {
	ft := factory()
	if ft == nil {
		return nil, &fielderr.InvalidFieldTypeError{Value: factory}
	}
	return ft, nil
}
