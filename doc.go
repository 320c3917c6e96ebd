// Package typedrill wires the text-fragment drill tool together.
//
// The heart of the repository is the validation boundary: the schema package
// declares the settings contract, the validate package turns a raw untyped
// mapping into either a fully typed value set or the complete list of
// violations, and the settings package binds both to the drill tool's five
// recognized keys. The rawconfig package obtains the raw mapping, and the
// trainer and terminate packages consume the validated result.
//
// This package itself is the thin composition layer: an App built on
// go.uber.org/fx that supplies the logger and the validated settings and
// runs the collaborator modules until the drill session asks to terminate.
package typedrill
