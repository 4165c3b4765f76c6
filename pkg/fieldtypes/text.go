package fieldtypes

import (
	"html"
	"strings"

	"github.com/goliatone/go-fieldkit/pkg/field"
)

// Text renders a free-form text value: plain text when viewing, a themed
// input control when editing.
type Text struct {
	base     *field.BaseType
	settings settings
}

// NewText constructs a text field type.
func NewText(opts ...Option) *Text {
	t := &Text{settings: newSettings(opts...)}
	t.base = field.NewBaseType().
		Handle(field.ModeViewing, t.renderViewing).
		Handle(field.ModeEditing, t.renderEditing)
	return t
}

// TextFactory adapts NewText for registries that instantiate per call.
func TextFactory(opts ...Option) field.Factory {
	return func() field.FieldType { return NewText(opts...) }
}

func (t *Text) Render(mode field.Mode, args ...any) (string, error) {
	return t.base.Render(mode, args...)
}

func (t *Text) SupportedModes() []field.Mode { return t.base.SupportedModes() }

func (t *Text) Clone() field.FieldType {
	clone := &Text{settings: t.settings}
	clone.base = field.NewBaseType().
		Handle(field.ModeViewing, clone.renderViewing).
		Handle(field.ModeEditing, clone.renderEditing)
	return clone
}

func (t *Text) renderViewing(_ field.Mode, args ...any) (string, error) {
	value := firstString(args)
	if t.settings.label != "" {
		return t.settings.label + ": " + value, nil
	}
	return value, nil
}

func (t *Text) renderEditing(_ field.Mode, args ...any) (string, error) {
	value := firstString(args)

	var sb strings.Builder
	sb.WriteString(`<input type="text"`)
	sb.WriteString(attr("class", themeClass(t.settings.theme, "input")))
	sb.WriteString(attr("style", themeStyle(t.settings.theme)))
	sb.WriteString(attr("placeholder", t.settings.placeholder))
	sb.WriteString(` value="` + html.EscapeString(value) + `">`)
	return sb.String(), nil
}
