package middlewares

// Truncate caps every string argument at Limit runes, appending an
// ellipsis to shortened values. A non-positive limit passes everything
// through.
type Truncate struct {
	Limit int
}

func (t Truncate) Call(args []any) ([]any, error) {
	if t.Limit <= 0 {
		return args, nil
	}
	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range out {
		s, ok := arg.(string)
		if !ok {
			continue
		}
		runes := []rune(s)
		if len(runes) > t.Limit {
			out[i] = string(runes[:t.Limit]) + "…"
		}
	}
	return out, nil
}
