// Package middlewares ships ready-made argument transformations: trimming,
// truncating, defaulting and markup sanitising. RegisterBuiltins wires them
// onto a configuration under conventional names and in canonical order.
package middlewares

import (
	"errors"

	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/field"
)

// DefaultTruncateLimit is the rune limit used when registering Truncate by
// name.
const DefaultTruncateLimit = 120

// RegisterBuiltins registers the built-in middlewares under conventional
// names and permits them on cfg in canonical order: Default, Trim,
// Sanitize, Truncate, then Conditional.
func RegisterBuiltins(cfg *config.Configuration) error {
	if cfg == nil {
		return errors.New("middlewares: configuration is nil")
	}
	if err := cfg.RegisteredMiddlewares.RegisterAll(map[field.Name]any{
		"trim":     Trim{},
		"sanitize": Sanitize{},
		"truncate": Truncate{Limit: DefaultTruncateLimit},
	}); err != nil {
		return err
	}
	cfg.PermitMiddlewares(Default{}, Trim{}, Sanitize{}, Truncate{}, Conditional{})
	return nil
}
