// Package schema declares the validation contract of configuration fields.
//
// A Field couples a name with its primitive Kind, requiredness, optional
// default, semantic check, and a human-readable description. Fields are
// collected into a Registry, an ordered, immutable table that drives
// validation; iteration order over the registry is the declaration order,
// which makes error reporting deterministic.
//
// Raw values coming out of a decoder are untyped. The Value type is a small
// variant over the three supported primitives (number, string, boolean), so
// checkers and the validator can stay uniform instead of specializing per
// field type.
//
// # Construction invariants
//
// NewRegistry rejects inconsistent field declarations up front:
//   - names must be unique and non-empty
//   - an optional field must carry a default of its declared kind
//   - a required field must not carry a default
//   - every field must have a semantic check
//
// A registry that constructs successfully is safe for concurrent use.
package schema
