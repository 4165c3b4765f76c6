package fieldtypes

import (
	"strings"

	"github.com/goliatone/go-fieldkit/pkg/field"
)

// Boolean renders a yes/no value: its labels when viewing, a themed
// checkbox when editing.
type Boolean struct {
	base     *field.BaseType
	settings settings
}

// NewBoolean constructs a boolean field type.
func NewBoolean(opts ...Option) *Boolean {
	b := &Boolean{settings: newSettings(opts...)}
	b.base = field.NewBaseType().
		Handle(field.ModeViewing, b.renderViewing).
		Handle(field.ModeEditing, b.renderEditing)
	return b
}

// BooleanFactory adapts NewBoolean for registries that instantiate per
// call.
func BooleanFactory(opts ...Option) field.Factory {
	return func() field.FieldType { return NewBoolean(opts...) }
}

func (b *Boolean) Render(mode field.Mode, args ...any) (string, error) {
	return b.base.Render(mode, args...)
}

func (b *Boolean) SupportedModes() []field.Mode { return b.base.SupportedModes() }

func (b *Boolean) Clone() field.FieldType {
	clone := &Boolean{settings: b.settings}
	clone.base = field.NewBaseType().
		Handle(field.ModeViewing, clone.renderViewing).
		Handle(field.ModeEditing, clone.renderEditing)
	return clone
}

func (b *Boolean) renderViewing(_ field.Mode, args ...any) (string, error) {
	label := b.settings.falseLabel
	if truthy(args) {
		label = b.settings.trueLabel
	}
	if b.settings.label != "" {
		return b.settings.label + ": " + label, nil
	}
	return label, nil
}

func (b *Boolean) renderEditing(_ field.Mode, args ...any) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<input type="checkbox"`)
	sb.WriteString(attr("class", themeClass(b.settings.theme, "checkbox")))
	sb.WriteString(attr("style", themeStyle(b.settings.theme)))
	if truthy(args) {
		sb.WriteString(" checked")
	}
	sb.WriteString(">")
	return sb.String(), nil
}

func truthy(args []any) bool {
	if len(args) == 0 || args[0] == nil {
		return false
	}
	switch v := args[0].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true
		}
		return false
	case int:
		return v != 0
	default:
		return false
	}
}
