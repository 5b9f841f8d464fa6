package eval

import (
	"go.uber.org/zap"

	"noodle/ast"
	"noodle/memory"
	"noodle/value"
)

// Env is the environment an expression is reduced against: the
// program's root Bowl, the process-wide Memory, and a logger for
// non-fatal "evaluation mismatch" diagnostics. It bundles what a
// Bowl/Memory reference resolves against, the way a variable-binding
// context bundles global/local name bindings.
type Env struct {
	Root *value.Bowl
	Mem  *memory.Memory
	Log  *zap.Logger
}

// NewEnv constructs an Env, defaulting to a no-op logger when log is
// nil (tests construct Env without wiring telemetry).
func NewEnv(root *value.Bowl, mem *memory.Memory, log *zap.Logger) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{Root: root, Mem: mem, Log: log}
}

// asEvalFunc adapts Eval into the value.EvalFunc shape Bowl.Read/
// Write need, closing over env so every Noodle examined during a scan
// is evaluated against the same environment.
func (env *Env) asEvalFunc() value.EvalFunc {
	return func(e value.Expr) value.Value {
		return Eval(e.(ast.Expr), env)
	}
}
