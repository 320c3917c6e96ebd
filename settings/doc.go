// Package settings declares the configuration contract of the drill tool and
// maps validated values onto a typed Settings object.
//
// Registry builds the field table — five keys, in a fixed order that also
// fixes the order of validation errors. The challengeFile check needs to
// touch the filesystem; that capability is injected as a ReadProbe so tests
// can validate without real files. FileProbe is the os-backed probe the
// binary uses.
package settings
