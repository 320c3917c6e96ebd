package typedrill_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/typedrill"
	"github.com/0xalexb/typedrill/settings"
	"github.com/0xalexb/typedrill/trainer"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewApp_CreatesAppWithDefaults(t *testing.T) {
	t.Parallel()

	app := typedrill.NewApp()
	require.NotNil(t, app)
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	app := typedrill.NewApp(typedrill.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.True(t, invoked)
}

func TestNewApp_SettingsAreAvailableInContainer(t *testing.T) {
	t.Parallel()

	supplied := &settings.Settings{
		WinProbability: 0.5,
		FragmentLength: 40,
		ChallengeIndex: 0,
		ChallengeFile:  "challenges.txt",
		MaxAttempts:    3,
	}

	var captured *settings.Settings

	module := fx.Module("test",
		fx.Invoke(func(cfg *settings.Settings) {
			captured = cfg
		}),
	)

	app := typedrill.NewApp(
		typedrill.WithLogLevel("error"),
		typedrill.WithSettings(supplied),
		typedrill.WithModules(module),
	)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Same(t, supplied, captured)
}

func TestNewApp_TrainerSessionShutsAppDown(t *testing.T) {
	t.Parallel()

	challengePath := filepath.Join(t.TempDir(), "challenges.txt")
	require.NoError(t, os.WriteFile(challengePath, []byte("dd5j\n"), 0o600))

	cfg := &settings.Settings{
		WinProbability: 0.5,
		FragmentLength: 40,
		ChallengeIndex: 0,
		ChallengeFile:  challengePath,
		MaxAttempts:    1,
	}

	app := typedrill.NewApp(
		typedrill.WithLogLevel("error"),
		typedrill.WithSettings(cfg),
		typedrill.WithTrainer(
			trainer.WithRoll(func() float64 { return 0 }),
			trainer.WithOutput(discardWriter{}),
		),
	)
	require.NotNil(t, app)

	done := make(chan struct{})

	go func() {
		app.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("app did not shut down after the drill session terminated")
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
