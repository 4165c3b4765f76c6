package fieldtypes

import (
	"html"
	"strings"

	"github.com/goliatone/go-fieldkit/pkg/field"
)

// Choice is one selectable option.
type Choice struct {
	Value string
	Label string
}

// Select renders a choice among fixed options: the matching label when
// viewing, a themed select control when editing.
type Select struct {
	base     *field.BaseType
	settings settings
	choices  []Choice
}

// NewSelect constructs a select field type over the given choices.
func NewSelect(choices []Choice, opts ...Option) *Select {
	s := &Select{
		settings: newSettings(opts...),
		choices:  append([]Choice(nil), choices...),
	}
	s.base = field.NewBaseType().
		Handle(field.ModeViewing, s.renderViewing).
		Handle(field.ModeEditing, s.renderEditing)
	return s
}

// SelectFactory adapts NewSelect for registries that instantiate per call.
func SelectFactory(choices []Choice, opts ...Option) field.Factory {
	return func() field.FieldType { return NewSelect(choices, opts...) }
}

func (s *Select) Render(mode field.Mode, args ...any) (string, error) {
	return s.base.Render(mode, args...)
}

func (s *Select) SupportedModes() []field.Mode { return s.base.SupportedModes() }

// Clone deep-copies the choice list; the theme config is shared by
// reference.
func (s *Select) Clone() field.FieldType {
	clone := &Select{
		settings: s.settings,
		choices:  append([]Choice(nil), s.choices...),
	}
	clone.base = field.NewBaseType().
		Handle(field.ModeViewing, clone.renderViewing).
		Handle(field.ModeEditing, clone.renderEditing)
	return clone
}

func (s *Select) renderViewing(_ field.Mode, args ...any) (string, error) {
	value := firstString(args)
	label := value
	for _, choice := range s.choices {
		if choice.Value == value {
			label = choice.Label
			break
		}
	}
	if s.settings.label != "" {
		return s.settings.label + ": " + label, nil
	}
	return label, nil
}

func (s *Select) renderEditing(_ field.Mode, args ...any) (string, error) {
	value := firstString(args)

	var sb strings.Builder
	sb.WriteString("<select")
	sb.WriteString(attr("class", themeClass(s.settings.theme, "select")))
	sb.WriteString(attr("style", themeStyle(s.settings.theme)))
	sb.WriteString(">")
	for _, choice := range s.choices {
		sb.WriteString(`<option value="` + html.EscapeString(choice.Value) + `"`)
		if choice.Value == value {
			sb.WriteString(" selected")
		}
		sb.WriteString(">" + html.EscapeString(choice.Label) + "</option>")
	}
	sb.WriteString("</select>")
	return sb.String(), nil
}
