package middlewares

import "strings"

// Trim trims surrounding whitespace from every string argument. The mode
// element is not a string and passes through untouched.
type Trim struct{}

func (Trim) Call(args []any) ([]any, error) {
	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range out {
		if s, ok := arg.(string); ok {
			out[i] = strings.TrimSpace(s)
		}
	}
	return out, nil
}
