// Package config holds the settings one interpreter run needs beyond
// the source text itself, trimmed to what the Bowl language actually
// has knobs for: this language carries no numeric base, output
// format, or random-seed settings, so only the REPL/diagnostic
// concerns survive.
package config

// Config is a plain struct with nil-safe getters, so a nil *Config
// (the zero value of an unset flag set) behaves as sensible defaults
// rather than panicking.
type Config struct {
	origin      string
	prompt      string
	interactive bool
	debug       bool
}

// Origin is the file name (or "<repl>") reported in diagnostics. A
// nil Config reports "<input>".
func (c *Config) Origin() string {
	if c == nil {
		return "<input>"
	}
	return c.origin
}

// SetOrigin sets the diagnostic origin name.
func (c *Config) SetOrigin(origin string) { c.origin = origin }

// Prompt is the string the REPL prints before reading a program.
// cmd/noodle's --prompt flag defaults it to ">>> "; a nil or unset
// Config yields the empty string.
func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

// SetPrompt sets the REPL prompt string.
func (c *Config) SetPrompt(prompt string) { c.prompt = prompt }

// Interactive reports whether the REPL should print its prompt before
// each program and a newline after it. The REPL keeps running after a
// fatal per-program error whether or not this is set.
func (c *Config) Interactive() bool {
	if c == nil {
		return false
	}
	return c.interactive
}

// SetInteractive sets the interactive flag.
func (c *Config) SetInteractive(interactive bool) { c.interactive = interactive }

// Debug reports whether verbose logging was requested with --debug.
func (c *Config) Debug() bool {
	if c == nil {
		return false
	}
	return c.debug
}

// SetDebug sets the debug flag.
func (c *Config) SetDebug(debug bool) { c.debug = debug }
