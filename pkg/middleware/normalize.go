package middleware

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// Normalize resolves every reference to a ready middleware instance: names
// are looked up in reg, factories are invoked, instances pass through. The
// same rules apply wherever a middleware reference appears.
func Normalize(refs []Ref, reg *Registry) ([]Middleware, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	out := make([]Middleware, 0, len(refs))
	for _, ref := range refs {
		m, err := normalizeRef(ref, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func normalizeRef(ref Ref, reg *Registry) (Middleware, error) {
	switch v := ref.(type) {
	case nil:
		return nil, &fielderr.InvalidMiddlewareError{Value: ref}
	case Middleware:
		return v, nil
	case Factory:
		return instantiate(v)
	case func() Middleware:
		return instantiate(Factory(v))
	case field.Name:
		return resolveName(v, reg)
	case string:
		return resolveName(field.Name(v), reg)
	default:
		return nil, &fielderr.InvalidMiddlewareError{Value: ref}
	}
}

func resolveName(name field.Name, reg *Registry) (Middleware, error) {
	if reg == nil {
		return nil, &fielderr.UnregisteredMiddlewareError{Name: name.String()}
	}
	return reg.Resolve(name)
}

func instantiate(value any) (Middleware, error) {
	switch v := value.(type) {
	case Middleware:
		return v, nil
	case Factory:
		m := v()
		if m == nil {
			return nil, &fielderr.InvalidMiddlewareError{Value: value}
		}
		return m, nil
	case func() Middleware:
		return instantiate(Factory(v))
	}
	return nil, &fielderr.InvalidMiddlewareError{Value: value}
}
