package schema

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a field is declared without a name.
var ErrEmptyName = errors.New("field name must not be empty")

// ErrDuplicateName is returned when two fields share a name.
var ErrDuplicateName = errors.New("duplicate field name")

// ErrMissingCheck is returned when a field is declared without a semantic check.
var ErrMissingCheck = errors.New("field must have a check")

// ErrMissingDefault is returned when an optional field has no default value.
var ErrMissingDefault = errors.New("optional field must have a default value")

// ErrUnexpectedDefault is returned when a required field carries a default value.
var ErrUnexpectedDefault = errors.New("required field must not have a default value")

// ErrDefaultKindMismatch is returned when a default value has the wrong kind.
var ErrDefaultKindMismatch = errors.New("default value kind does not match field kind")

// CheckFunc is a pure semantic check applied to a type-correct value.
// It returns the accepted value, possibly normalized, or an error whose
// message is the field's user-facing violation text.
type CheckFunc func(Value) (Value, error)

// Field is the full validation contract of one configuration key.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     *Value
	Check       CheckFunc
	Description string
}

// Registry is an ordered, immutable table of field declarations.
type Registry struct {
	fields []Field
	index  map[string]int
}

// NewRegistry builds a registry from field declarations, preserving their
// order. It returns an error when a declaration breaks the construction
// invariants; inconsistent schemas are programming defects and never reach
// validation.
func NewRegistry(fields ...Field) (*Registry, error) {
	index := make(map[string]int, len(fields))

	for position, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("field at position %d: %w", position, ErrEmptyName)
		}

		if _, exists := index[field.Name]; exists {
			return nil, fmt.Errorf("field %q: %w", field.Name, ErrDuplicateName)
		}

		if field.Check == nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, ErrMissingCheck)
		}

		if field.Required && field.Default != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, ErrUnexpectedDefault)
		}

		if !field.Required {
			if field.Default == nil {
				return nil, fmt.Errorf("field %q: %w", field.Name, ErrMissingDefault)
			}

			if field.Default.Kind() != field.Kind {
				return nil, fmt.Errorf("field %q: %w", field.Name, ErrDefaultKindMismatch)
			}
		}

		index[field.Name] = position
	}

	return &Registry{
		fields: append([]Field(nil), fields...),
		index:  index,
	}, nil
}

// Fields returns the declarations in registry order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Lookup returns the declaration for a name and whether it exists.
func (r *Registry) Lookup(name string) (Field, bool) {
	position, ok := r.index[name]
	if !ok {
		return Field{}, false //nolint:exhaustruct // zero Field on miss
	}

	return r.fields[position], true
}

// Len returns the number of declared fields.
func (r *Registry) Len() int {
	return len(r.fields)
}
