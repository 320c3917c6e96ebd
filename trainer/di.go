package trainer

import (
	"context"
	"log/slog"

	"github.com/0xalexb/typedrill/settings"
	"github.com/0xalexb/typedrill/terminate"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that runs the drill loop. The loop starts
// in the background once the application is up and hands its termination
// command to the terminate.Handler, which shuts the application down.
// Settings and the Handler must be provided by other modules.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("trainer",
		fx.Invoke(func(lifecycle fx.Lifecycle, cfg *settings.Settings, handler *terminate.Handler) {
			loop := New(cfg, opts...)

			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						command, state, err := loop.Run()
						if err != nil {
							slog.Error("drill session failed", "error", err)
						} else {
							slog.Info("drill session finished",
								"won", state.Won,
								"attempts", state.Attempts,
							)
						}

						handler.Handle(command)
					}()

					return nil
				},
				OnStop: nil,
			})
		}),
	)
}
