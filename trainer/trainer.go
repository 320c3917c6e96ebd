// Package trainer runs the drill loop: it picks a challenge fragment and
// plays rounds against it until the session is won or attempts run out,
// producing a termination command for the terminate package.
package trainer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/0xalexb/typedrill/settings"
	"github.com/0xalexb/typedrill/terminate"
)

// ErrNoFragments is returned when the challenge file holds no usable fragments.
var ErrNoFragments = errors.New("challenge file holds no fragments")

// FinalState is the outcome of a finished drill session.
type FinalState struct {
	Fragment string
	Attempts int
	Won      bool
}

// Loop plays drill rounds against a challenge fragment.
type Loop struct {
	settings *settings.Settings
	roll     func() float64
	out      io.Writer
}

// Option configures a Loop.
type Option func(*Loop)

// WithRoll replaces the random source deciding round outcomes.
// Used by tests to make sessions deterministic.
func WithRoll(roll func() float64) Option {
	return func(l *Loop) {
		l.roll = roll
	}
}

// WithOutput redirects where fragments and round results are printed.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) {
		l.out = w
	}
}

// New creates a Loop for validated settings.
func New(cfg *settings.Settings, opts ...Option) *Loop {
	loop := &Loop{
		settings: cfg,
		roll:     rand.Float64,
		out:      os.Stdout,
	}

	for _, apply := range opts {
		apply(loop)
	}

	return loop
}

// Run plays one session: it loads the configured challenge fragment and
// rolls up to MaxAttempts rounds, each won with probability WinProbability.
// A won session ends with write-and-quit, an exhausted one with quit.
func (l *Loop) Run() (terminate.Command, FinalState, error) {
	data, err := os.ReadFile(l.settings.ChallengeFile) // #nosec G304 -- validated challenge path
	if err != nil {
		return terminate.ForceQuit, FinalState{}, fmt.Errorf("reading challenge file: %w", err)
	}

	fragments := SplitFragments(data)
	if len(fragments) == 0 {
		return terminate.ForceQuit, FinalState{}, ErrNoFragments
	}

	fragment := clip(fragments[l.settings.ChallengeIndex%len(fragments)], l.settings.FragmentLength)
	state := FinalState{Fragment: fragment, Attempts: 0, Won: false}

	fmt.Fprintln(l.out, fragment)

	for attempt := 1; attempt <= l.settings.MaxAttempts; attempt++ {
		state.Attempts = attempt

		if l.roll() < l.settings.WinProbability {
			state.Won = true

			fmt.Fprintf(l.out, "won after %d attempt(s)\n", attempt)
			slog.Info("drill won", "attempts", attempt, "fragment_length", len(fragment))

			return terminate.WriteQuit, state, nil
		}

		slog.Debug("drill round lost", "attempt", attempt)
	}

	fmt.Fprintf(l.out, "out of attempts (%d)\n", l.settings.MaxAttempts)
	slog.Info("drill lost", "attempts", state.Attempts)

	return terminate.Quit, state, nil
}

func clip(fragment string, length int) string {
	runes := []rune(fragment)
	if length >= len(runes) {
		return fragment
	}

	return string(runes[:length])
}
