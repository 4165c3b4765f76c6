// Package fieldtypes ships ready-made field types for common controls:
// plain text, booleans, selects, template-driven markup and interactive
// prompts. All of them render plain text when viewing and a themed control
// when editing.
package fieldtypes

import (
	theme "github.com/goliatone/go-theme"
)

type settings struct {
	label       string
	placeholder string
	trueLabel   string
	falseLabel  string
	theme       *theme.RendererConfig
}

// Option customises a built-in field type at construction time.
type Option func(*settings)

// WithLabel sets the label prefixed to viewing output and used as the
// prompt message.
func WithLabel(label string) Option {
	return func(s *settings) { s.label = label }
}

// WithPlaceholder sets the placeholder emitted on editing controls.
func WithPlaceholder(text string) Option {
	return func(s *settings) { s.placeholder = text }
}

// WithBoolLabels overrides the viewing labels used by Boolean.
func WithBoolLabels(truthy, falsy string) Option {
	return func(s *settings) {
		if truthy != "" {
			s.trueLabel = truthy
		}
		if falsy != "" {
			s.falseLabel = falsy
		}
	}
}

// WithTheme attaches a go-theme renderer config; editing controls derive
// their class and style attributes from it. Theme configs are read-only and
// shared by reference across clones.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *settings) { s.theme = cfg }
}

func newSettings(opts ...Option) settings {
	s := settings{trueLabel: "Yes", falseLabel: "No"}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
