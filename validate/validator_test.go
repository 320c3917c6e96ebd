package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xalexb/typedrill/schema"
	"github.com/0xalexb/typedrill/validate"

	"github.com/stretchr/testify/require"
)

func acceptAll(v schema.Value) (schema.Value, error) {
	return v, nil
}

func rejectAll(message string) schema.CheckFunc {
	return func(schema.Value) (schema.Value, error) {
		return schema.Value{}, errors.New(message)
	}
}

func numberDefault(v float64) *schema.Value {
	value := schema.NumberValue(v)

	return &value
}

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	registry, err := schema.NewRegistry(
		schema.Field{
			Name:        "speed",
			Kind:        schema.KindNumber,
			Required:    true,
			Check:       acceptAll,
			Description: "target speed",
		},
		schema.Field{
			Name:     "retries",
			Kind:     schema.KindNumber,
			Required: false,
			Default:  numberDefault(3),
			Check:    rejectAll("check must not run for defaults"),
		},
		schema.Field{
			Name:        "label",
			Kind:        schema.KindString,
			Required:    true,
			Check:       acceptAll,
			Description: "display label",
		},
	)
	require.NoError(t, err)

	return registry
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	validator := validate.New(testRegistry(t))

	values, err := validator.Validate(map[string]any{
		"speed": 2.5,
		"label": "warmup",
	})
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.InDelta(t, 2.5, values["speed"].Number(), 0)
	require.Equal(t, "warmup", values["label"].Text())
	require.InDelta(t, 3.0, values["retries"].Number(), 0, "omitted optional field takes its default")
}

func TestValidate_DefaultSkipsCheck(t *testing.T) {
	t.Parallel()

	// The retries field rejects every checked value, so a passing run proves
	// the default bypassed the check.
	validator := validate.New(testRegistry(t))

	values, err := validator.Validate(map[string]any{
		"speed": 1,
		"label": "warmup",
	})
	require.NoError(t, err)
	require.InDelta(t, 3.0, values["retries"].Number(), 0)
}

func TestValidate_MissingRequired(t *testing.T) {
	t.Parallel()

	validator := validate.New(testRegistry(t))

	values, err := validator.Validate(map[string]any{
		"label": "warmup",
	})
	require.Nil(t, values)

	var validationErr *validate.Error

	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []string{
		"Missing required setting 'speed' of type number (target speed)",
	}, validationErr.Issues)
}

func TestValidate_TypeMismatchSkipsCheck(t *testing.T) {
	t.Parallel()

	registry, err := schema.NewRegistry(
		schema.Field{
			Name:     "speed",
			Kind:     schema.KindNumber,
			Required: true,
			Check:    rejectAll("check must not run for mistyped values"),
		},
	)
	require.NoError(t, err)

	values, err := validate.New(registry).Validate(map[string]any{
		"speed": "fast",
	})
	require.Nil(t, values)

	var validationErr *validate.Error

	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []string{
		"Invalid type of speed, expected a number, but got: fast",
	}, validationErr.Issues)
}

func TestValidate_NoShortCircuit(t *testing.T) {
	t.Parallel()

	registry, err := schema.NewRegistry(
		schema.Field{Name: "first", Kind: schema.KindNumber, Required: true, Check: rejectAll("first is bad")},
		schema.Field{Name: "second", Kind: schema.KindBool, Required: true, Check: acceptAll, Description: "a flag"},
		schema.Field{Name: "third", Kind: schema.KindString, Required: true, Check: rejectAll("third is bad")},
	)
	require.NoError(t, err)

	values, err := validate.New(registry).Validate(map[string]any{
		"first": 1,
		"third": "x",
	})
	require.Nil(t, values)

	var validationErr *validate.Error

	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []string{
		"first is bad",
		"Missing required setting 'second' of type boolean (a flag)",
		"third is bad",
	}, validationErr.Issues, "every field is reported, in declaration order")
}

func TestValidate_ExtraKeysIgnored(t *testing.T) {
	t.Parallel()

	validator := validate.New(testRegistry(t))

	values, err := validator.Validate(map[string]any{
		"speed":   1,
		"label":   "warmup",
		"unknown": struct{}{},
	})
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.NotContains(t, values, "unknown")
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	validator := validate.New(testRegistry(t))
	raw := map[string]any{"speed": "fast"}

	_, first := validator.Validate(raw)
	_, second := validator.Validate(raw)

	require.Error(t, first)
	require.Error(t, second)
	require.Equal(t, first.Error(), second.Error())
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := &validate.Error{Issues: []string{"one", "two"}}
	require.Equal(t, "one\ntwo", err.Error())

	empty := &validate.Error{}
	require.Equal(t, "settings validation failed", empty.Error())
}

func TestValidate_NormalizedValueIsKept(t *testing.T) {
	t.Parallel()

	floorCheck := func(v schema.Value) (schema.Value, error) {
		return schema.NumberValue(float64(int(v.Number()))), nil
	}

	registry, err := schema.NewRegistry(
		schema.Field{Name: "length", Kind: schema.KindNumber, Required: true, Check: floorCheck},
	)
	require.NoError(t, err)

	values, err := validate.New(registry).Validate(map[string]any{"length": 2.9})
	require.NoError(t, err)
	require.InDelta(t, 2.0, values["length"].Number(), 0)
}

func BenchmarkValidate(b *testing.B) {
	registry, err := schema.NewRegistry(
		schema.Field{Name: "speed", Kind: schema.KindNumber, Required: true, Check: acceptAll},
		schema.Field{Name: "label", Kind: schema.KindString, Required: true, Check: acceptAll},
	)
	if err != nil {
		b.Fatal(err)
	}

	validator := validate.New(registry)
	raw := map[string]any{"speed": 1.0, "label": fmt.Sprintf("run-%d", b.N)}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = validator.Validate(raw)
	}
}
