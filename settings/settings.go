package settings

import (
	"fmt"
	"math"

	"github.com/0xalexb/typedrill/schema"
	"github.com/0xalexb/typedrill/validate"
)

// Keys of the recognized settings, in declaration order.
const (
	KeyWinProbability = "winProbability"
	KeyFragmentLength = "fragmentLength"
	KeyChallengeIndex = "challengeIndex"
	KeyChallengeFile  = "challengeFile"
	KeyMaxAttempts    = "maxAttempts"
)

// Defaults for the optional settings.
const (
	DefaultChallengeIndex = 0
	DefaultMaxAttempts    = 3
)

// Settings is the typed, fully validated configuration of the drill tool.
type Settings struct {
	WinProbability float64
	FragmentLength int
	ChallengeIndex int
	ChallengeFile  string
	MaxAttempts    int
}

// Registry builds the field table for the drill settings. The probe is
// closed over by the challengeFile check, keeping filesystem access
// substitutable.
func Registry(probe ReadProbe) (*schema.Registry, error) {
	return schema.NewRegistry(
		schema.Field{
			Name:        KeyWinProbability,
			Kind:        schema.KindNumber,
			Required:    true,
			Check:       checkWinProbability,
			Description: "chance that a drill round is won",
		},
		schema.Field{
			Name:        KeyFragmentLength,
			Kind:        schema.KindNumber,
			Required:    true,
			Check:       atLeast(KeyFragmentLength, 1),
			Description: "number of characters in a drill fragment",
		},
		schema.Field{
			Name:        KeyChallengeIndex,
			Kind:        schema.KindNumber,
			Required:    false,
			Default:     numberDefault(DefaultChallengeIndex),
			Check:       atLeast(KeyChallengeIndex, 0),
			Description: "which challenge to start from",
		},
		schema.Field{
			Name:        KeyChallengeFile,
			Kind:        schema.KindString,
			Required:    true,
			Check:       checkChallengeFile(probe),
			Description: "path to the file holding the challenge text",
		},
		schema.Field{
			Name:        KeyMaxAttempts,
			Kind:        schema.KindNumber,
			Required:    false,
			Default:     numberDefault(DefaultMaxAttempts),
			Check:       atLeast(KeyMaxAttempts, 1),
			Description: "rounds allowed per fragment",
		},
	)
}

// FromRaw validates a raw mapping against the drill registry and maps the
// accepted values onto a Settings object. On failure the returned error is
// the validator's *validate.Error with one message per violating field.
func FromRaw(raw map[string]any, probe ReadProbe) (*Settings, error) {
	registry, err := Registry(probe)
	if err != nil {
		return nil, fmt.Errorf("building settings registry: %w", err)
	}

	values, err := validate.New(registry).Validate(raw)
	if err != nil {
		return nil, err
	}

	return &Settings{
		WinProbability: values[KeyWinProbability].Number(),
		FragmentLength: int(values[KeyFragmentLength].Number()),
		ChallengeIndex: int(values[KeyChallengeIndex].Number()),
		ChallengeFile:  values[KeyChallengeFile].Text(),
		MaxAttempts:    int(values[KeyMaxAttempts].Number()),
	}, nil
}

func checkWinProbability(value schema.Value) (schema.Value, error) {
	probability := value.Number()
	if probability <= 0 || probability >= 1 {
		return schema.Value{}, fmt.Errorf(
			"Invalid value of %s, must be strictly between 0 and 1, but got: %v",
			KeyWinProbability, value,
		)
	}

	return value, nil
}

// atLeast returns a check that rejects numbers below floor and normalizes
// accepted ones to their integer floor.
func atLeast(key string, floor float64) schema.CheckFunc {
	return func(value schema.Value) (schema.Value, error) {
		number := value.Number()
		if number < floor {
			return schema.Value{}, fmt.Errorf(
				"Invalid value of %s, must be at least %v, but got: %v",
				key, floor, value,
			)
		}

		return schema.NumberValue(math.Floor(number)), nil
	}
}

func checkChallengeFile(probe ReadProbe) schema.CheckFunc {
	return func(value schema.Value) (schema.Value, error) {
		path := value.Text()
		if !probe(path) {
			return schema.Value{}, fmt.Errorf("Cannot read challenge file at '%s'", path)
		}

		return value, nil
	}
}

func numberDefault(v float64) *schema.Value {
	value := schema.NumberValue(v)

	return &value
}
