// Package interp is the interpreter facade: it ties parser, memory,
// eval, and scheduler together into the single entry point both the
// file-execution and REPL paths of the CLI call.
package interp

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"noodle/ast"
	"noodle/failure"
	"noodle/ioadapter"
	"noodle/memory"
	"noodle/parser"
	"noodle/scheduler"
	"noodle/value"
)

// Config holds what one Run call needs beyond the source text itself:
// the host I/O adapter and a logger.
type Config struct {
	IO     ioadapter.Adapter
	Logger *zap.Logger
}

// Run parses source and drives it to completion with the scheduler,
// returning any fatal error encountered. The grammar's
// "program := bowl" rule (parser/grammar.go) makes a bare memory
// symbol "@" root unparseable, so the root-is-memory invariant holds
// structurally and needs no separate runtime check.

func Run(ctx context.Context, cfg Config, filename, source string) error {
	root, err := parseRoot(filename, source)
	if err != nil {
		return err
	}

	bowl := value.NewBowl()
	for _, n := range root.Noodles {
		bowl.Append(value.Noodle{Key: n.Key, Body: n.Body})
	}

	mem := memory.New(cfg.IO, cfg.Logger)
	sched := scheduler.New(bowl, mem, cfg.Logger)
	return sched.Run(ctx)
}

// RunToBuffer evaluates source against an in-memory input buffer and
// returns everything written to host output, for use by tests.
func RunToBuffer(ctx context.Context, source string, stdin []byte) (stdout []byte, err error) {
	var out bytes.Buffer
	cfg := Config{IO: ioadapter.Buffer(stdin, &out)}
	err = Run(ctx, cfg, "<input>", source)
	return out.Bytes(), err
}

func parseRoot(filename, source string) (ast.BowlLit, error) {
	root, err := parser.Parse(filename, source)
	if err != nil {
		return ast.BowlLit{}, failure.Wrap(failure.Parse, err)
	}
	return root, nil
}
