package registry

import (
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// FieldTypes is a Registry constrained to field types: a stored value must
// be a field.FieldType instance or a field.Factory.
type FieldTypes struct {
	*Registry
}

// NewFieldTypes creates an empty field type registry.
func NewFieldTypes() *FieldTypes {
	return &FieldTypes{Registry: New(
		WithValueValidator(validateFieldType),
		WithValueCloner(cloneFieldType),
		WithNameErrors(
			func(n field.Name) error { return &fielderr.InvalidFieldTypeNameError{Name: n.String()} },
			func(n field.Name) error { return &fielderr.DuplicateFieldTypeError{Name: n.String()} },
		),
	)}
}

// Resolve returns a ready instance for name, invoking registered factories.
func (r *FieldTypes) Resolve(name field.Name) (field.FieldType, error) {
	value, ok := r.Find(name)
	if !ok {
		return nil, &fielderr.UnregisteredFieldTypeError{Name: name.String()}
	}
	switch v := value.(type) {
	case field.FieldType:
		return v, nil
	case field.Factory:
		return instantiateFieldType(v)
	case func() field.FieldType:
		return instantiateFieldType(v)
	}
	return nil, &fielderr.InvalidFieldTypeError{Value: value}
}

// Clone produces an independent field type registry.
func (r *FieldTypes) Clone() *FieldTypes {
	return &FieldTypes{Registry: r.Registry.Clone()}
}

func validateFieldType(value any) error {
	switch value.(type) {
	case field.FieldType, field.Factory, func() field.FieldType:
		return nil
	default:
		return &fielderr.InvalidFieldTypeError{Value: value}
	}
}

// cloneFieldType deep-copies instances; factories are shared by reference
// since duplicating a constructor has no meaning.
func cloneFieldType(value any) any {
	if ft, ok := value.(field.FieldType); ok {
		return ft.Clone()
	}
	return value
}

func instantiateFieldType(factory func() field.FieldType) (field.FieldType, error) {
	ft := factory()
	if ft == nil {
		return nil, &fielderr.InvalidFieldTypeError{Value: factory}
	}
	return ft, nil
}
