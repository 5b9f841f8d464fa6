// Package buildinfo holds the version metadata cmd/noodle reports.
// Keeping it as its own package lets ldflags override Version
// at link time without touching cmd/noodle's source.
package buildinfo

// Version is the interpreter's reported version, overridable at
// build time with:
//
//	go build -ldflags "-X noodle/internal/buildinfo.Version=v1.2.3"
var Version = "dev"

// Name is the interpreter's program name, used as the command name in
// cmd/noodle's usage line.
const Name = "noodle"
