// Package fielderr defines the error taxonomy shared by every fieldkit
// package. Every concrete kind wraps the root sentinel Err, so a caller can
// catch anything this module produces with a single errors.Is check, and
// each kind carries the offending value so failures are diagnosable without
// a debugger.
package fielderr

import (
	"errors"
	"fmt"
)

// Err is the root of the taxonomy. errors.Is(err, fielderr.Err) matches any
// error raised by this module.
var Err = errors.New("fieldkit")

// InvalidNameError reports a registration name that fails the identifier
// rule.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("fieldkit: invalid registration name %q", e.Name)
}

func (e *InvalidNameError) Unwrap() error { return Err }

// DuplicateError reports a name already present in a registry.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("fieldkit: %q is already registered", e.Name)
}

func (e *DuplicateError) Unwrap() error { return Err }

// InvalidFieldTypeNameError reports a field type registration name that
// fails the identifier rule.
type InvalidFieldTypeNameError struct {
	Name string
}

func (e *InvalidFieldTypeNameError) Error() string {
	return fmt.Sprintf("fieldkit: invalid field type name %q", e.Name)
}

func (e *InvalidFieldTypeNameError) Unwrap() error { return Err }

// DuplicateFieldTypeError reports a field type name already present in a
// registry.
type DuplicateFieldTypeError struct {
	Name string
}

func (e *DuplicateFieldTypeError) Error() string {
	return fmt.Sprintf("fieldkit: field type %q is already registered", e.Name)
}

func (e *DuplicateFieldTypeError) Unwrap() error { return Err }

// InvalidFieldTypeError reports a value that cannot be coerced into a field
// type.
type InvalidFieldTypeError struct {
	Value any
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("fieldkit: %v (%T) cannot be used as a field type", e.Value, e.Value)
}

func (e *InvalidFieldTypeError) Unwrap() error { return Err }

// UnregisteredFieldTypeError reports a symbolic field type name with no
// registration.
type UnregisteredFieldTypeError struct {
	Name string
}

func (e *UnregisteredFieldTypeError) Error() string {
	return fmt.Sprintf("fieldkit: field type %q is not registered", e.Name)
}

func (e *UnregisteredFieldTypeError) Unwrap() error { return Err }

// InvalidMiddlewareError reports a value that cannot be coerced into a
// middleware.
type InvalidMiddlewareError struct {
	Value any
}

func (e *InvalidMiddlewareError) Error() string {
	return fmt.Sprintf("fieldkit: %v (%T) cannot be used as a middleware", e.Value, e.Value)
}

func (e *InvalidMiddlewareError) Unwrap() error { return Err }

// UnregisteredMiddlewareError reports a symbolic middleware name with no
// registration.
type UnregisteredMiddlewareError struct {
	Name string
}

func (e *UnregisteredMiddlewareError) Error() string {
	return fmt.Sprintf("fieldkit: middleware %q is not registered", e.Name)
}

func (e *UnregisteredMiddlewareError) Unwrap() error { return Err }

// UnsupportedModeError reports a render call with a mode outside the field
// type's supported set.
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("fieldkit: unsupported mode %q", e.Mode)
}

func (e *UnsupportedModeError) Unwrap() error { return Err }

// UnpermittedMiddlewareError reports a requested middleware whose class is
// absent from the defined middleware list. Middleware identifies the
// offender in human readable form.
type UnpermittedMiddlewareError struct {
	Middleware string
}

func (e *UnpermittedMiddlewareError) Error() string {
	return fmt.Sprintf("fieldkit: middleware %s is not in the defined middleware list", e.Middleware)
}

func (e *UnpermittedMiddlewareError) Unwrap() error { return Err }
