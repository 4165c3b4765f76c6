package fieldtypes_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fieldtypes"
)

// scriptedDriver returns canned answers and records the prompt it was
// asked.
type scriptedDriver struct {
	answer string
	err    error
	asked  []fieldtypes.PromptConfig
}

func (d *scriptedDriver) Input(cfg fieldtypes.PromptConfig) (string, error) {
	d.asked = append(d.asked, cfg)
	return d.answer, d.err
}

func (d *scriptedDriver) Confirm(cfg fieldtypes.PromptConfig) (bool, error) {
	d.asked = append(d.asked, cfg)
	return d.answer == "yes", d.err
}

func TestPromptViewingRendersLikeText(t *testing.T) {
	ft := fieldtypes.NewPrompt(&scriptedDriver{}, fieldtypes.WithLabel("Title"))
	out, err := ft.Render(field.ModeViewing, "hello")
	if err != nil || out != "Title: hello" {
		t.Fatalf("viewing: %q, %v", out, err)
	}
}

func TestPromptEditingAsksTheDriver(t *testing.T) {
	driver := &scriptedDriver{answer: "from prompt"}
	ft := fieldtypes.NewPrompt(driver,
		fieldtypes.WithLabel("Title"),
		fieldtypes.WithPlaceholder("the page title"),
	)

	out, err := ft.Render(field.ModeEditing, "current")
	if err != nil {
		t.Fatalf("editing: %v", err)
	}
	if out != "from prompt" {
		t.Fatalf("editing should return the prompt answer, got %q", out)
	}

	if len(driver.asked) != 1 {
		t.Fatalf("expected one prompt, got %d", len(driver.asked))
	}
	cfg := driver.asked[0]
	if cfg.Message != "Title" || cfg.Default != "current" || cfg.Help != "the page title" {
		t.Fatalf("unexpected prompt config: %+v", cfg)
	}
}

func TestPromptEditingDefaultsMessage(t *testing.T) {
	driver := &scriptedDriver{answer: "x"}
	ft := fieldtypes.NewPrompt(driver)
	if _, err := ft.Render(field.ModeEditing); err != nil {
		t.Fatalf("editing: %v", err)
	}
	if driver.asked[0].Message != "Value" {
		t.Fatalf("unlabeled prompts should fall back to a generic message, got %q", driver.asked[0].Message)
	}
}

func TestPromptEditingPropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{err: fieldtypes.ErrPromptAborted}
	ft := fieldtypes.NewPrompt(driver)
	_, err := ft.Render(field.ModeEditing, "x")
	if !errors.Is(err, fieldtypes.ErrPromptAborted) {
		t.Fatalf("expected ErrPromptAborted, got %v", err)
	}
}

func TestPromptCloneSharesDriver(t *testing.T) {
	driver := &scriptedDriver{answer: "x"}
	original := fieldtypes.NewPrompt(driver)
	clone := original.Clone()

	if _, err := clone.Render(field.ModeEditing); err != nil {
		t.Fatalf("clone editing: %v", err)
	}
	if len(driver.asked) != 1 {
		t.Fatalf("clones should share the driver, asked %d times", len(driver.asked))
	}
}
