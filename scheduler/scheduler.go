// Package scheduler implements the cursor-driven Noodle selection
// loop: at each step, scan the program's root Bowl,
// evaluate every Noodle's key expression, select the smallest
// nextable key, fire its body, and repeat until nothing is nextable.
// This is the only advance mechanism this language permits — there is
// no explicit control flow.
package scheduler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"noodle/ast"
	"noodle/eval"
	"noodle/failure"
	"noodle/memory"
	"noodle/rational"
	"noodle/value"
)

// Scheduler drives one program run to completion or a fatal error.
type Scheduler struct {
	root *value.Bowl
	mem  *memory.Memory
	log  *zap.Logger
}

// New constructs a Scheduler over root (the program's root Bowl,
// never the Memory Bowl — the grammar's parse root makes that
// unparseable, so the caller never has to enforce it) and mem.
func New(root *value.Bowl, mem *memory.Memory, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{root: root, mem: mem, log: log}
}

// candidate is one Noodle considered nextable this step, paired with
// its freshly evaluated key so Run does not re-evaluate it twice
// (once to select, once to set the cursor), except for one
// authoritative re-evaluation immediately before firing.
type candidate struct {
	key    rational.Rational
	noodle value.Noodle
}

// Run executes the selection loop until no Noodle is nextable or ctx
// is canceled. A non-nil error is either a fatal error raised during
// evaluation or ctx.Err() after cancellation; cancellation is checked
// once per step, between Noodle firings.
func (s *Scheduler) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toFatalError(r)
		}
	}()

	env := eval.NewEnv(s.root, s.mem, s.log)
	steps := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cur, hasCursor := s.mem.Cursor()
		best, ok := s.selectNext(env, cur, hasCursor)
		if !ok {
			s.log.Debug("scheduler: no nextable noodle, halting", zap.Int("steps", steps))
			return nil
		}

		// Re-evaluate the key one more time immediately before firing:
		// the cursor is set to the selected Noodle's evaluated key,
		// re-evaluated fresh at this point rather than reused from
		// selection.
		keyVal := eval.Eval(astExpr(best.noodle.Key), env)
		keyNum, ok := value.AsNumber(keyVal)
		if !ok {
			// A key that stopped being a Number between selection and
			// firing is not meaningfully nextable anymore; skip this
			// step rather than advance the cursor with a stale value.
			continue
		}
		s.mem.SetCursor(keyNum)
		eval.Eval(astExpr(best.noodle.Body), env)
		steps++
	}
}

// selectNext scans among every Noodle in
// the root Bowl, find the nextable one (its evaluated key is a
// Number, and either there is no cursor yet or the key strictly
// exceeds it) with the smallest key, breaking ties by insertion
// order.
func (s *Scheduler) selectNext(env *eval.Env, cur rational.Rational, hasCursor bool) (candidate, bool) {
	var best candidate
	found := false
	for _, n := range s.root.Noodles() {
		kv := eval.Eval(astExpr(n.Key), env)
		kn, ok := value.AsNumber(kv)
		if !ok {
			continue
		}
		if hasCursor && !kn.Gt(cur) {
			continue
		}
		if !found || kn.Lt(best.key) {
			best = candidate{key: kn, noodle: n}
			found = true
		}
	}
	return best, found
}

func astExpr(e value.Expr) ast.Expr {
	return e.(ast.Expr)
}

// toFatalError normalizes a recovered panic whose value is an error
// into a failure.FatalError the CLI can print as a one-line
// diagnostic: a memory I/O type error becomes IOType, and a rational
// division by zero or any other error becomes Arithmetic. A panic
// value that is not an error is re-raised unchanged.
func toFatalError(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	switch {
	case errors.Is(err, rational.ErrDivByZero):
		return failure.Wrap(failure.Arithmetic, err)
	case errors.Is(err, memory.ErrNonByteOutput):
		return failure.Wrap(failure.IOType, err)
	default:
		return failure.Wrap(failure.Arithmetic, err)
	}
}
