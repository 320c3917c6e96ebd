// Package terminate models the closed set of commands that end a drill
// session and performs the matching process-level effects.
package terminate

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// Command is one of the recognized ways to end a session.
type Command int

// The closed set of termination commands.
const (
	Quit Command = iota
	ForceQuit
	WriteQuit
)

// Shortcut returns the editor shortcut associated with the command.
func (c Command) Shortcut() string {
	switch c {
	case Quit:
		return ":q"
	case ForceQuit:
		return ":q!"
	case WriteQuit:
		return ":wq"
	default:
		return ""
	}
}

// String returns the command name.
func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case ForceQuit:
		return "force-quit"
	case WriteQuit:
		return "write-and-quit"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Handler turns a termination command into a graceful application shutdown.
type Handler struct {
	shutdowner fx.Shutdowner
}

// NewHandler creates a Handler bound to the application's shutdowner.
func NewHandler(shutdowner fx.Shutdowner) *Handler {
	return &Handler{shutdowner: shutdowner}
}

// Handle logs the command and triggers shutdown.
func (h *Handler) Handle(command Command) {
	slog.Info("session terminated",
		"command", command.String(),
		"shortcut", command.Shortcut(),
	)

	err := h.shutdowner.Shutdown()
	if err != nil {
		slog.Error("failed to trigger shutdown", "error", err)
	}
}

// NewModule creates an Fx module that provides the termination Handler.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule() fx.Option {
	return fx.Module("terminate",
		fx.Provide(NewHandler),
	)
}
