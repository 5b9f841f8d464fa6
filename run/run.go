// Package run provides the execution control cmd/noodle drives,
// factored out of main so it is independently testable. REPL reads
// and evaluates one complete Bowl program at a time — this
// language has no incremental statement form, so "one unit of REPL
// input" is "one balanced `{ ... }` program" instead of "one line."
package run

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"noodle/config"
	"noodle/interp"
	"noodle/ioadapter"
)

// File executes the single complete program in source to completion
// and returns its fatal error, if any. stdin/stdout back the
// program's Memory key 1 I/O; stdin is drained on the program's first
// read of key 1, so a program that never reads it leaves stdin as is.
func File(ctx context.Context, cfg *config.Config, log *zap.Logger, source string, stdin io.Reader, stdout io.Writer) error {
	var readErr error
	drained := false
	adapter := ioadapter.Adapter{
		ReadAll: func() []byte {
			if drained {
				return nil
			}
			drained = true
			var b []byte
			b, readErr = io.ReadAll(stdin)
			return b
		},
		WriteAll: func(b []byte) error {
			_, err := stdout.Write(b)
			return err
		},
	}
	if err := interp.Run(ctx, interp.Config{IO: adapter, Logger: log}, cfg.Origin(), source); err != nil {
		return err
	}
	return readErr
}

// REPL reads balanced `{ ... }` programs from in, one per prompt,
// running each to completion against stdin/stdout and reporting
// fatal errors to errOut without exiting — one program's fatal error
// is reported and the session keeps going, rather than unwinding the
// whole REPL.
func REPL(ctx context.Context, cfg *config.Config, log *zap.Logger, in io.Reader, stdin io.Reader, stdout, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		if cfg.Interactive() {
			fmt.Fprint(stdout, cfg.Prompt())
		}
		program, ok := readBalancedProgram(scanner)
		if program == "" && !ok {
			return
		}
		if program == "" {
			continue
		}
		if err := File(ctx, cfg, log, program, stdin, stdout); err != nil {
			fmt.Fprintf(errOut, "%s: %s\n", cfg.Origin(), err)
		}
		if cfg.Interactive() {
			fmt.Fprintln(stdout)
		}
	}
}

// readBalancedProgram accumulates lines from scanner until braces
// balance to zero, producing one complete "{ ... }" program per call.
// ok is false once the scanner is exhausted with nothing left to
// return.
func readBalancedProgram(scanner *bufio.Scanner) (string, bool) {
	var b strings.Builder
	depth := 0
	started := false
	for scanner.Scan() {
		line := scanner.Text()
		for _, r := range line {
			switch r {
			case '{':
				depth++
				started = true
			case '}':
				depth--
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
		if started && depth <= 0 {
			return b.String(), true
		}
	}
	return b.String(), false
}
