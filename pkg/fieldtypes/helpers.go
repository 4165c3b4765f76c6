package fieldtypes

import (
	"fmt"
	"html"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func firstString(args []any) string {
	if len(args) == 0 || args[0] == nil {
		return ""
	}
	switch v := args[0].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func attr(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" %s=%q", name, html.EscapeString(value))
}

// themeClass derives the class attribute for a control from the theme
// selection, falling back to the bare control class.
func themeClass(cfg *theme.RendererConfig, control string) string {
	classes := []string{"fieldkit-" + control}
	if cfg != nil && cfg.Theme != "" {
		classes = append(classes, "theme-"+cfg.Theme)
		if cfg.Variant != "" {
			classes = append(classes, "theme-"+cfg.Theme+"--"+cfg.Variant)
		}
	}
	return strings.Join(classes, " ")
}

// themeStyle flattens the theme's CSS variables into an inline style, keys
// sorted for stable output.
func themeStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+cfg.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
