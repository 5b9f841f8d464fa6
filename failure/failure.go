// Package failure classifies the fatal error taxonomy into a single
// exported type carrying a Kind, so callers can switch on failure
// class instead of matching message text.
package failure

import "github.com/pkg/errors"

// Kind enumerates the fatal error classes this interpreter raises.
type Kind int

const (
	// Parse covers lexical and grammatical errors.
	Parse Kind = iota
	// RootIsMemory covers a program root that is the memory symbol —
	// unreachable in practice since the grammar's
	// "program := bowl" rule makes it unparseable, but kept so the
	// taxonomy stays complete and callers can still switch on it.
	RootIsMemory
	// Arithmetic covers Rational construction/division by zero.
	Arithmetic
	// IOType covers a non-byte value written to the host output Bowl.
	IOType
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case RootIsMemory:
		return "root is memory"
	case Arithmetic:
		return "arithmetic error"
	case IOType:
		return "I/O type error"
	default:
		return "unknown error"
	}
}

// FatalError is the one error type every fatal condition in this
// interpreter is normalized to before it reaches the CLI.
type FatalError struct {
	Kind Kind
	Err  error
}

func (f *FatalError) Error() string {
	return f.Kind.String() + ": " + f.Err.Error()
}

func (f *FatalError) Unwrap() error { return f.Err }

// Wrap builds a FatalError of the given kind from cause, attaching a
// stack trace via pkg/errors the way every other fatal construction
// site in this repo does.
func Wrap(kind Kind, cause error) *FatalError {
	return &FatalError{Kind: kind, Err: errors.WithStack(cause)}
}
