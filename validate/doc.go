// Package validate turns an untyped configuration mapping into a fully
// checked value set, or into the complete list of violations.
//
// A Validator walks its registry in declaration order and, per field,
// resolves presence (missing required fields are violations, missing
// optional fields take their default), gates the runtime type against the
// declared kind, and finally runs the field's semantic check. Defaults are
// trusted and skip the check. Every field is evaluated regardless of earlier
// failures, so one pass reports everything that is wrong.
//
// Invalid input is an ordinary outcome, not an exceptional one: Validate
// never panics on data, and the returned *Error carries one message per
// failing field in declaration order. The two outcomes are exclusive — a
// value map is only returned when no field failed, and then it holds exactly
// the registry's key set.
package validate
