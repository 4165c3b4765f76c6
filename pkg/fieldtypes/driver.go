package fieldtypes

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptAborted reports an interactive prompt interrupted by the user.
var ErrPromptAborted = errors.New("fieldtypes: prompt aborted")

// PromptConfig configures one interactive prompt.
type PromptConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver abstracts the interactive prompt implementation so editing
// flows can be tested without a real terminal.
type PromptDriver interface {
	Input(cfg PromptConfig) (string, error)
	Confirm(cfg PromptConfig) (bool, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the survey-backed prompt driver.
func NewSurveyDriver() PromptDriver { return &surveyDriver{} }

func (d *surveyDriver) Input(cfg PromptConfig) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(cfg PromptConfig) (bool, error) {
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptAborted
	}
	return err
}
