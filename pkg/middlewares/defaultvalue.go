package middlewares

// Default replaces nil and empty-string arguments with Value. The mode
// element is neither, so it passes through untouched.
type Default struct {
	Value any
}

func (d Default) Call(args []any) ([]any, error) {
	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range out {
		if arg == nil {
			out[i] = d.Value
			continue
		}
		if s, ok := arg.(string); ok && s == "" {
			out[i] = d.Value
		}
	}
	return out, nil
}
