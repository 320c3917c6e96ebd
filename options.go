package typedrill

import (
	"github.com/0xalexb/typedrill/settings"
	"github.com/0xalexb/typedrill/terminate"
	"github.com/0xalexb/typedrill/trainer"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithSettings supplies validated drill settings to the DI container.
// The settings are expected to come out of settings.FromRaw; supplying an
// unvalidated Settings value defeats the validation boundary.
func WithSettings(cfg *settings.Settings) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Supply(cfg))
	}
}

// WithTrainer adds the drill loop and termination handling modules to the
// application. Settings must be supplied as well, e.g. via WithSettings.
func WithTrainer(opts ...trainer.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, terminate.NewModule(), trainer.NewModule(opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format for the application.
// Valid formats are: "json", "text". If not set or invalid, defaults to "json".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
