package middlewares

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizeOnce   sync.Once
	sanitizePolicy *bluemonday.Policy
)

// Sanitize strips markup from every string argument using a strict
// bluemonday policy, so field input accumulated through editing flows never
// carries live HTML into a renderer.
type Sanitize struct{}

func (Sanitize) Call(args []any) ([]any, error) {
	policy := strictPolicy()
	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range out {
		if s, ok := arg.(string); ok {
			out[i] = strings.TrimSpace(policy.Sanitize(s))
		}
	}
	return out, nil
}

func strictPolicy() *bluemonday.Policy {
	sanitizeOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return sanitizePolicy
}
