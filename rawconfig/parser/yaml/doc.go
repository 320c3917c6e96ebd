// Package yaml provides a YAML parser implementation for the rawconfig
// package.
//
// It uses github.com/goccy/go-yaml with native PathString support for
// section navigation. Colon-separated sections (e.g. "tools:typedrill") are
// converted to YAML path format (e.g. "$.tools.typedrill") internally.
//
// The decoded mapping is deliberately untyped (map[string]any): primitive
// typing is the validator's responsibility, so the parser must not coerce or
// reject scalar values.
//
// Section Conversion:
//   - Empty section "" -> decode entire document
//   - Single key "drill" -> "$.drill"
//   - Nested section "tools:typedrill" -> "$.tools.typedrill"
package yaml
