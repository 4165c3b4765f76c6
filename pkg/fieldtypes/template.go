package fieldtypes

import (
	"errors"

	"github.com/goliatone/go-fieldkit/pkg/field"
)

// Template renders through caller-supplied template strings, one per mode.
// The template context exposes mode, value (first argument), args (the
// rest) and label.
type Template struct {
	base     *field.BaseType
	engine   TemplateRenderer
	sources  map[field.Mode]string
	settings settings
}

// NewTemplate constructs a template field type. Every mode present in
// sources becomes a supported mode.
func NewTemplate(engine TemplateRenderer, sources map[field.Mode]string, opts ...Option) (*Template, error) {
	if engine == nil {
		return nil, errors.New("fieldtypes: template engine is required")
	}
	if len(sources) == 0 {
		return nil, errors.New("fieldtypes: at least one mode template is required")
	}

	t := &Template{
		engine:   engine,
		sources:  make(map[field.Mode]string, len(sources)),
		settings: newSettings(opts...),
	}
	t.base = field.NewBaseType()
	for mode, src := range sources {
		t.sources[mode] = src
		t.base.Handle(mode, t.renderMode)
	}
	return t, nil
}

// TemplateFactory adapts NewTemplate for registries; construction errors
// surface as a nil instance, which render calls reject.
func TemplateFactory(engine TemplateRenderer, sources map[field.Mode]string, opts ...Option) field.Factory {
	return func() field.FieldType {
		t, err := NewTemplate(engine, sources, opts...)
		if err != nil {
			return nil
		}
		return t
	}
}

func (t *Template) Render(mode field.Mode, args ...any) (string, error) {
	return t.base.Render(mode, args...)
}

func (t *Template) SupportedModes() []field.Mode { return t.base.SupportedModes() }

// Clone copies the source table; the engine is shared infrastructure.
func (t *Template) Clone() field.FieldType {
	clone := &Template{
		engine:   t.engine,
		sources:  make(map[field.Mode]string, len(t.sources)),
		settings: t.settings,
	}
	clone.base = field.NewBaseType()
	for mode, src := range t.sources {
		clone.sources[mode] = src
		clone.base.Handle(mode, clone.renderMode)
	}
	return clone
}

func (t *Template) renderMode(mode field.Mode, args ...any) (string, error) {
	var rest []any
	if len(args) > 1 {
		rest = args[1:]
	}
	data := map[string]any{
		"mode":  mode.String(),
		"value": firstString(args),
		"args":  rest,
		"label": t.settings.label,
	}
	return t.engine.RenderString(t.sources[mode], data)
}
