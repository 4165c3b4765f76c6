package builder_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-fieldkit/pkg/builder"
	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// echoField renders mode and arguments so tests can observe exactly what
// reached the field type.
type echoField struct{}

func (echoField) Render(mode field.Mode, args ...any) (string, error) {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, mode.String())
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, "|"), nil
}

func (echoField) SupportedModes() []field.Mode {
	return []field.Mode{field.ModeViewing, field.ModeEditing}
}

func (e echoField) Clone() field.FieldType { return e }

// upcase rewrites every string argument after the mode.
type upcase struct{}

func (upcase) Call(args []any) ([]any, error) {
	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range out {
		if s, ok := arg.(string); ok {
			out[i] = strings.ToUpper(s)
		}
	}
	return out, nil
}

// switchMode rewrites the leading mode argument.
type switchMode struct {
	to field.Mode
}

func (m switchMode) Call(args []any) ([]any, error) {
	if len(args) > 0 {
		if _, ok := args[0].(field.Mode); ok {
			out := make([]any, len(args))
			copy(out, args)
			out[0] = m.to
			return out, nil
		}
	}
	return args, nil
}

func newTestBuilder(t *testing.T, mutate func(*config.Configuration)) *builder.Builder {
	t.Helper()
	cfg := config.New()
	cfg.FieldTypes.MustRegister("echo", echoField{})
	if mutate != nil {
		mutate(cfg)
	}
	return builder.New(builder.WithConfiguration(cfg))
}

func TestFieldRendersByName(t *testing.T) {
	b := newTestBuilder(t, nil)
	out, err := b.Field("echo", "hello")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if out != "viewing|hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFieldAcceptsInstanceAndFactoryRefs(t *testing.T) {
	b := newTestBuilder(t, nil)

	out, err := b.Field(echoField{}, "direct")
	if err != nil || out != "viewing|direct" {
		t.Fatalf("instance ref: %q, %v", out, err)
	}

	out, err = b.Field(field.Factory(func() field.FieldType { return echoField{} }), "made")
	if err != nil || out != "viewing|made" {
		t.Fatalf("factory ref: %q, %v", out, err)
	}
}

func TestFieldRejectsInvalidRef(t *testing.T) {
	b := newTestBuilder(t, nil)
	_, err := b.Field(42, "value")
	var invalid *fielderr.InvalidFieldTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFieldTypeError, got %T", err)
	}
}

func TestFieldModeOverlayPerCall(t *testing.T) {
	b := newTestBuilder(t, nil)

	out, err := b.Field("echo", config.Map{"mode": "editing"}, "hello")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if out != "editing|hello" {
		t.Fatalf("per-call mode should win, got %q", out)
	}

	// Plain maps work the same as config.Map.
	out, err = b.Field("echo", map[string]any{"mode": "editing"}, "hello")
	if err != nil || out != "editing|hello" {
		t.Fatalf("plain map overlay: %q, %v", out, err)
	}

	// The overlay is per call; the next call is back to the base mode.
	out, err = b.Field("echo", "hello")
	if err != nil || out != "viewing|hello" {
		t.Fatalf("overlay leaked into a later call: %q, %v", out, err)
	}
}

func TestConfigureSwitchesModeWithoutCallSiteChange(t *testing.T) {
	b := newTestBuilder(t, nil)
	render := func() string {
		out, err := b.Field("echo", "hello")
		if err != nil {
			t.Fatalf("field: %v", err)
		}
		return out
	}

	if got := render(); got != "viewing|hello" {
		t.Fatalf("before: %q", got)
	}
	b.Configure(func(cfg *config.Configuration) {
		cfg.FieldOptions.Mode = field.ModeEditing
	})
	if got := render(); got != "editing|hello" {
		t.Fatalf("after: %q", got)
	}
}

func TestMiddlewareTransformsArguments(t *testing.T) {
	b := newTestBuilder(t, func(cfg *config.Configuration) {
		cfg.PermitMiddlewares(upcase{})
		cfg.FieldOptions.Middlewares = []middleware.Ref{upcase{}}
	})

	out, err := b.Field("echo", "hello")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if out != "viewing|HELLO" {
		t.Fatalf("middleware output should reach the field type, got %q", out)
	}
}

func TestMiddlewareCanRewriteMode(t *testing.T) {
	b := newTestBuilder(t, func(cfg *config.Configuration) {
		cfg.PermitMiddlewares(switchMode{})
		cfg.FieldOptions.Middlewares = []middleware.Ref{switchMode{to: field.ModeEditing}}
	})

	out, err := b.Field("echo", "hello")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if out != "editing|hello" {
		t.Fatalf("a middleware-written mode should govern rendering, got %q", out)
	}
}

func TestUnpermittedMiddlewareFailsTheCall(t *testing.T) {
	b := newTestBuilder(t, func(cfg *config.Configuration) {
		cfg.FieldOptions.Middlewares = []middleware.Ref{upcase{}}
	})

	_, err := b.Field("echo", "hello")
	var unpermitted *fielderr.UnpermittedMiddlewareError
	if !errors.As(err, &unpermitted) {
		t.Fatalf("expected UnpermittedMiddlewareError, got %T", err)
	}
}

func TestNamedMiddlewareResolvesThroughRegistry(t *testing.T) {
	b := newTestBuilder(t, func(cfg *config.Configuration) {
		cfg.RegisteredMiddlewares.MustRegister("upcase", upcase{})
		cfg.PermitMiddlewares(upcase{})
		cfg.FieldOptions.Middlewares = []middleware.Ref{field.Name("upcase")}
	})

	out, err := b.Field("echo", "hello")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if out != "viewing|HELLO" {
		t.Fatalf("named middleware should resolve and run, got %q", out)
	}
}

func TestAccessorResolvesPerCall(t *testing.T) {
	b := newTestBuilder(t, nil)
	render := b.Accessor("late")

	if _, err := render("hello"); err == nil {
		t.Fatalf("expected failure before registration")
	} else {
		var unregistered *fielderr.UnregisteredFieldTypeError
		if !errors.As(err, &unregistered) {
			t.Fatalf("expected UnregisteredFieldTypeError, got %T", err)
		}
	}

	b.Configure(func(cfg *config.Configuration) {
		cfg.FieldTypes.MustRegister("late", echoField{})
	})
	out, err := render("hello")
	if err != nil || out != "viewing|hello" {
		t.Fatalf("accessor should pick up the later registration: %q, %v", out, err)
	}
}

func TestScopedDoesNotLeak(t *testing.T) {
	b := newTestBuilder(t, nil)

	err := b.Scoped(&config.Options{Mode: field.ModeEditing}, func(scoped *builder.Builder) error {
		out, err := scoped.Field("echo", "inside")
		if err != nil {
			return err
		}
		if out != "editing|inside" {
			t.Fatalf("scoped overlay should apply inside the block, got %q", out)
		}
		scoped.Configure(func(cfg *config.Configuration) {
			cfg.FieldTypes.MustRegister("scoped_only", echoField{})
		})
		return nil
	})
	if err != nil {
		t.Fatalf("scoped: %v", err)
	}

	out, err := b.Field("echo", "outside")
	if err != nil || out != "viewing|outside" {
		t.Fatalf("scoped state leaked: %q, %v", out, err)
	}
	if b.Config().FieldTypes.Has("scoped_only") {
		t.Fatalf("registrations inside Scoped must not leak out")
	}
}

func TestWithMiddlewaresScopesTheList(t *testing.T) {
	b := newTestBuilder(t, func(cfg *config.Configuration) {
		cfg.PermitMiddlewares(upcase{})
	})

	err := b.WithMiddlewares([]middleware.Ref{upcase{}}, func(scoped *builder.Builder) error {
		out, err := scoped.Field("echo", "hello")
		if err != nil {
			return err
		}
		if out != "viewing|HELLO" {
			t.Fatalf("scoped middleware should run, got %q", out)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("with middlewares: %v", err)
	}

	out, err := b.Field("echo", "hello")
	if err != nil || out != "viewing|hello" {
		t.Fatalf("middleware list leaked out of the scope: %q, %v", out, err)
	}
}

func TestCloneBuildersDiverge(t *testing.T) {
	b := newTestBuilder(t, nil)
	clone := b.Clone()
	clone.Configure(func(cfg *config.Configuration) {
		cfg.FieldOptions.Mode = field.ModeEditing
	})

	out, err := b.Field("echo", "x")
	if err != nil || out != "viewing|x" {
		t.Fatalf("clone configuration reached the original: %q, %v", out, err)
	}
	out, err = clone.Field("echo", "x")
	if err != nil || out != "editing|x" {
		t.Fatalf("clone should carry its own configuration: %q, %v", out, err)
	}
}

func TestNewSnapshotsGlobalConfiguration(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	config.Configure(func(cfg *config.Configuration) {
		cfg.FieldTypes.MustRegister("echo", echoField{})
	})
	b := builder.New()

	// Global edits after construction never reach the builder.
	config.Configure(func(cfg *config.Configuration) {
		cfg.FieldOptions.Mode = field.ModeEditing
	})
	out, err := b.Field("echo", "x")
	if err != nil || out != "viewing|x" {
		t.Fatalf("builder should keep its construction-time snapshot: %q, %v", out, err)
	}
}
