package fieldtypes

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
)

// Prompt is a field type whose editing mode asks for a replacement value
// through an interactive prompt; viewing renders like Text. The driver
// defaults to the survey-backed terminal implementation and can be swapped
// for tests.
type Prompt struct {
	base     *field.BaseType
	settings settings
	driver   PromptDriver
}

// NewPrompt constructs a prompt field type. A nil driver selects the
// terminal driver.
func NewPrompt(driver PromptDriver, opts ...Option) *Prompt {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	p := &Prompt{settings: newSettings(opts...), driver: driver}
	p.base = field.NewBaseType().
		Handle(field.ModeViewing, p.renderViewing).
		Handle(field.ModeEditing, p.renderEditing)
	return p
}

// PromptFactory adapts NewPrompt for registries that instantiate per call.
func PromptFactory(driver PromptDriver, opts ...Option) field.Factory {
	return func() field.FieldType { return NewPrompt(driver, opts...) }
}

func (p *Prompt) Render(mode field.Mode, args ...any) (string, error) {
	return p.base.Render(mode, args...)
}

func (p *Prompt) SupportedModes() []field.Mode { return p.base.SupportedModes() }

// Clone shares the driver; prompts hold no other mutable state.
func (p *Prompt) Clone() field.FieldType {
	clone := &Prompt{settings: p.settings, driver: p.driver}
	clone.base = field.NewBaseType().
		Handle(field.ModeViewing, clone.renderViewing).
		Handle(field.ModeEditing, clone.renderEditing)
	return clone
}

func (p *Prompt) renderViewing(_ field.Mode, args ...any) (string, error) {
	value := firstString(args)
	if p.settings.label != "" {
		return p.settings.label + ": " + value, nil
	}
	return value, nil
}

func (p *Prompt) renderEditing(_ field.Mode, args ...any) (string, error) {
	message := p.settings.label
	if message == "" {
		message = "Value"
	}
	return p.driver.Input(PromptConfig{
		Message: message,
		Default: firstString(args),
		Help:    p.settings.placeholder,
	})
}
