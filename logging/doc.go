// Package logging provides structured logging using Go's standard library
// log/slog. Output is JSON by default, with an optional plain-text format
// for console use, and integrates with Uber's Fx dependency injection
// framework.
package logging
