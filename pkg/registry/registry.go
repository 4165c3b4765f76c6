// Package registry provides the name-keyed stores used to resolve field
// types and middlewares by symbolic reference.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/fielderr"
)

// ValueFunc validates a candidate value before registration. Specialized
// registries use it to constrain the stored value shape; the name rule is
// never relaxed.
type ValueFunc func(value any) error

// CloneFunc deep-copies a stored value for snapshots and registry clones.
// Constructor values must be returned as-is: they are shared by reference.
type CloneFunc func(value any) any

// NameErrorFunc builds the error raised for a rejected or duplicate name,
// letting specializations surface their own error kinds.
type NameErrorFunc func(name field.Name) error

// Option customises a registry at construction time.
type Option func(*Registry)

// WithValueValidator installs the value constraint hook.
func WithValueValidator(fn ValueFunc) Option {
	return func(r *Registry) { r.validate = fn }
}

// WithValueCloner installs the deep-copy hook used by All and Clone.
func WithValueCloner(fn CloneFunc) Option {
	return func(r *Registry) { r.clone = fn }
}

// WithNameErrors overrides the errors raised for invalid and duplicate
// names.
func WithNameErrors(invalid, duplicate NameErrorFunc) Option {
	return func(r *Registry) {
		if invalid != nil {
			r.invalidName = invalid
		}
		if duplicate != nil {
			r.duplicate = duplicate
		}
	}
}

// Registry stores values by name. Registration is permanent for the life of
// the registry: there is no overwrite and no removal, only Clone for an
// independently mutable copy.
type Registry struct {
	mu          sync.RWMutex
	entries     map[field.Name]any
	validate    ValueFunc
	clone       CloneFunc
	invalidName NameErrorFunc
	duplicate   NameErrorFunc
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[field.Name]any),
		clone:   func(v any) any { return v },
		invalidName: func(n field.Name) error {
			return &fielderr.InvalidNameError{Name: n.String()}
		},
		duplicate: func(n field.Name) error {
			return &fielderr.DuplicateError{Name: n.String()}
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register stores value under name. The name must satisfy the identifier
// rule and must not be present already.
func (r *Registry) Register(name field.Name, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(name, value); err != nil {
		return err
	}
	r.entries[name] = value
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name field.Name, value any) {
	if err := r.Register(name, value); err != nil {
		panic(err)
	}
}

// RegisterAll validates every entry before committing any of them, so a
// failure leaves the registry completely unchanged. Entries are validated
// in name order to keep error reporting deterministic.
func (r *Registry) RegisterAll(entries map[field.Name]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]field.Name, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, name := range names {
		if err := r.check(name, entries[name]); err != nil {
			return err
		}
	}
	for _, name := range names {
		r.entries[name] = entries[name]
	}
	return nil
}

// Find returns the stored value. Absence is not an error here; callers
// decide whether a missing name is fatal.
func (r *Registry) Find(name field.Name) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[name]
	return value, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name field.Name) bool {
	_, ok := r.Find(name)
	return ok
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []field.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]field.Name, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// All returns a snapshot of the registry. Stored values pass through the
// clone hook, so mutating the snapshot never reaches the registry;
// constructor values come back by reference.
func (r *Registry) All() map[field.Name]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[field.Name]any, len(r.entries))
	for name, value := range r.entries {
		out[name] = r.clone(value)
	}
	return out
}

// Clone produces an independent registry carrying deep copies of every
// entry and the same hooks.
func (r *Registry) Clone() *Registry {
	clone := &Registry{
		entries:     make(map[field.Name]any, r.Len()),
		validate:    r.validate,
		clone:       r.clone,
		invalidName: r.invalidName,
		duplicate:   r.duplicate,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, value := range r.entries {
		clone.entries[name] = r.clone(value)
	}
	return clone
}

func (r *Registry) check(name field.Name, value any) error {
	if !name.Valid() {
		return r.invalidName(name)
	}
	if _, exists := r.entries[name]; exists {
		return r.duplicate(name)
	}
	if r.validate != nil {
		if err := r.validate(value); err != nil {
			return fmt.Errorf("registry: %q: %w", name, err)
		}
	}
	return nil
}
