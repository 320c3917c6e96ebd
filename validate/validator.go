package validate

import (
	"fmt"
	"strings"

	"github.com/0xalexb/typedrill/schema"
)

// Error aggregates per-field validation messages, in field declaration order.
type Error struct {
	Issues []string
}

// Error renders the collected messages as a multi-line string.
func (err *Error) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "settings validation failed"
	}

	return strings.Join(err.Issues, "\n")
}

// Validator checks raw mappings against a field-schema registry.
// It is stateless apart from the registry and safe for concurrent use.
type Validator struct {
	registry *schema.Registry
}

// New creates a Validator for the given registry.
func New(registry *schema.Registry) Validator {
	return Validator{registry: registry}
}

// Validate resolves, type-checks, and semantically checks every declared
// field of the raw mapping. It returns either a value for every declared key,
// or a *Error listing all violations; never a mix of the two. Keys in the
// raw mapping that no field declares are ignored.
func (v Validator) Validate(raw map[string]any) (map[string]schema.Value, error) {
	var issues []string

	values := make(map[string]schema.Value, v.registry.Len())

	for _, field := range v.registry.Fields() {
		rawValue, present := raw[field.Name]
		if !present {
			if field.Required {
				issues = append(issues, fmt.Sprintf(
					"Missing required setting '%s' of type %s (%s)",
					field.Name, field.Kind, field.Description,
				))

				continue
			}

			// Defaults are declared with the right kind and are trusted
			// as pre-validated; the check does not run for them.
			values[field.Name] = *field.Default

			continue
		}

		value, ok := schema.FromAny(field.Kind, rawValue)
		if !ok {
			issues = append(issues, fmt.Sprintf(
				"Invalid type of %s, expected a %s, but got: %v",
				field.Name, field.Kind, rawValue,
			))

			continue
		}

		accepted, err := field.Check(value)
		if err != nil {
			issues = append(issues, err.Error())

			continue
		}

		values[field.Name] = accepted
	}

	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}

	return values, nil
}
