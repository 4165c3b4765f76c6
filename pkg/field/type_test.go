package field_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

func TestNameValid(t *testing.T) {
	cases := []struct {
		name field.Name
		want bool
	}{
		{"text", true},
		{"text_area", true},
		{"select2", true},
		{"", false},
		{"Text", false},
		{"_text", false},
		{"2fast", false},
		{"text area", false},
	}
	for _, tc := range cases {
		if got := tc.name.Valid(); got != tc.want {
			t.Fatalf("Valid(%q): want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestParseModeNormalises(t *testing.T) {
	if got := field.ParseMode("  Editing "); got != field.ModeEditing {
		t.Fatalf("expected editing mode, got %q", got)
	}
	if field.ParseMode("").IsSet() {
		t.Fatalf("empty mode should be unset")
	}
}

func TestBaseTypeDispatchesOnMode(t *testing.T) {
	base := field.NewBaseType().
		Handle(field.ModeViewing, func(_ field.Mode, args ...any) (string, error) {
			return fmt.Sprintf("view:%v", args[0]), nil
		}).
		Handle(field.ModeEditing, func(_ field.Mode, args ...any) (string, error) {
			return fmt.Sprintf("edit:%v", args[0]), nil
		})

	out, err := base.Render(field.ModeViewing, "Jacob")
	if err != nil {
		t.Fatalf("render viewing: %v", err)
	}
	if out != "view:Jacob" {
		t.Fatalf("unexpected viewing output: %q", out)
	}

	out, err = base.Render(field.ModeEditing, "Jacob")
	if err != nil {
		t.Fatalf("render editing: %v", err)
	}
	if out != "edit:Jacob" {
		t.Fatalf("unexpected editing output: %q", out)
	}
}

func TestBaseTypeRejectsUnsupportedMode(t *testing.T) {
	base := field.NewBaseType().
		Handle(field.ModeViewing, func(field.Mode, ...any) (string, error) { return "", nil }).
		Handle(field.ModeEditing, func(field.Mode, ...any) (string, error) { return "", nil })

	_, err := base.Render(field.Mode("admin"), "Jacob")
	if err == nil {
		t.Fatalf("expected unsupported mode error")
	}

	var unsupported *fielderr.UnsupportedModeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedModeError, got %T", err)
	}
	if unsupported.Mode != "admin" {
		t.Fatalf("error should carry the rejected mode, got %q", unsupported.Mode)
	}
	if !errors.Is(err, fielderr.Err) {
		t.Fatalf("error should wrap the root sentinel")
	}
}

func TestBaseTypeSupportedModes(t *testing.T) {
	base := field.NewBaseType().
		Handle(field.ModeViewing, func(field.Mode, ...any) (string, error) { return "", nil }).
		Handle(field.ModeEditing, func(field.Mode, ...any) (string, error) { return "", nil }).
		Handle(field.Mode("preview"), func(field.Mode, ...any) (string, error) { return "", nil })

	want := []field.Mode{"editing", "preview", "viewing"}
	if diff := cmp.Diff(want, base.SupportedModes()); diff != "" {
		t.Fatalf("supported modes mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseTypeCloneIsIndependent(t *testing.T) {
	base := field.NewBaseType().
		Handle(field.ModeViewing, func(field.Mode, ...any) (string, error) { return "v", nil })

	clone, ok := base.Clone().(*field.BaseType)
	if !ok {
		t.Fatalf("clone should be a *BaseType")
	}
	clone.Handle(field.ModeEditing, func(field.Mode, ...any) (string, error) { return "e", nil })

	if _, err := base.Render(field.ModeEditing); err == nil {
		t.Fatalf("registering a routine on the clone must not affect the original")
	}
	if out, err := clone.Render(field.ModeEditing); err != nil || out != "e" {
		t.Fatalf("clone editing render: %q, %v", out, err)
	}
}
