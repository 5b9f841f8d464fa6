// Package eval implements the recursive expression reduction: the
// tree-walking core that turns an ast.Expr into a
// value.Value against an Env, committing every Bowl/Memory side
// effect strictly left-to-right along the way. A single dispatch
// function handles every node kind, since this language's dozen node
// kinds need no per-type method set the way a multi-variant numeric
// tower would.
package eval

import (
	"go.uber.org/zap"

	"noodle/ast"
	"noodle/rational"
	"noodle/value"
)

// Eval reduces expr to a Value against env.
func Eval(expr ast.Expr, env *Env) value.Value {
	switch e := expr.(type) {
	case ast.Lit:
		return value.Number{Rational: e.Value}

	case ast.ValueLit:
		return e.Value

	case ast.BowlLit:
		return evalBowlLit(e, env)

	case ast.Memory:
		// "@" evaluated outside of an Index/Assign context has no
		// defined meaning: Memory is only ever resolved
		// as the left operand of ":" or "=". Treat it as the general
		// "evaluation mismatch" case and return Null.
		env.Log.Debug("memory symbol evaluated outside of index/assign context")
		return value.Null

	case ast.Index:
		return evalIndex(e, env)

	case ast.Assign:
		return evalAssign(e, env)

	case ast.Unary:
		return evalUnary(e, env)

	case ast.Binary:
		return evalBinary(e, env)
	}

	env.Log.Error("eval: unrecognized expression node", zap.String("type", typeName(expr)))
	return value.Null
}

func typeName(e ast.Expr) string {
	switch e.(type) {
	case ast.Lit:
		return "Lit"
	case ast.ValueLit:
		return "ValueLit"
	case ast.BowlLit:
		return "BowlLit"
	case ast.Memory:
		return "Memory"
	case ast.Index:
		return "Index"
	case ast.Assign:
		return "Assign"
	case ast.Unary:
		return "Unary"
	case ast.Binary:
		return "Binary"
	default:
		return "unknown"
	}
}

// evalBowlLit constructs a fresh Bowl from a "{ [k;v] ... }" literal.
// The Noodles keep their key/body expressions unevaluated: a Noodle's
// key is evaluated on every access, never cached.
func evalBowlLit(e ast.BowlLit, env *Env) value.Value {
	b := value.NewBowl()
	for _, n := range e.Noodles {
		b.Append(value.Noodle{Key: n.Key, Body: n.Body})
	}
	return b
}

// evalIndex implements the "B:K" and "@:K" rules.
func evalIndex(e ast.Index, env *Env) value.Value {
	if _, ok := e.Bowl.(ast.Memory); ok {
		key := Eval(e.Key, env)
		kr, ok := value.AsNumber(key)
		if !ok {
			env.Log.Debug("memory read with non-number key")
			return value.Null
		}
		return env.Mem.Read(kr, env.asEvalFunc())
	}

	bv := Eval(e.Bowl, env)
	b, ok := value.AsBowl(bv)
	if !ok {
		env.Log.Debug("index of non-bowl value")
		return value.Null
	}
	key := Eval(e.Key, env)
	kr, ok := value.AsNumber(key)
	if !ok {
		env.Log.Debug("bowl read with non-number key")
		return value.Null
	}
	return b.Read(kr, env.asEvalFunc())
}

// evalAssign implements the "B:K = V" and "@:K = V" rules.
// Operands are reduced strictly left to right — Bowl, then Key, then
// Value — and the result is always Null, whether or not the
// write actually took effect.
func evalAssign(e ast.Assign, env *Env) value.Value {
	_, isMemory := e.Bowl.(ast.Memory)

	var bv value.Value
	if !isMemory {
		bv = Eval(e.Bowl, env)
	}
	kv := Eval(e.Key, env)
	vv := Eval(e.Value, env)

	kr, ok := value.AsNumber(kv)
	if !ok {
		env.Log.Debug("assign with non-number key")
		return value.Null
	}

	if isMemory {
		if err := env.Mem.Write(kr, vv, env.asEvalFunc(), literalKey, literalValue); err != nil {
			env.Log.Error("memory write failed", zap.Error(err))
			panic(err)
		}
		return value.Null
	}

	b, ok := value.AsBowl(bv)
	if !ok {
		env.Log.Debug("assign to non-bowl value")
		return value.Null
	}
	b.Write(kr, vv, env.asEvalFunc(), literalKey, literalValue)
	return value.Null
}

func literalKey(v value.Value) value.Expr   { return ast.ValueLit{Value: v} }
func literalValue(v value.Value) value.Expr { return ast.ValueLit{Value: v} }

// evalUnary implements the "^E" (denominator) and "!E"
// (logical not) rules. Note the documented asymmetry: "!" treats
// every non-"1/1" result — including
// other nonzero numbers and non-Numbers alike — as negating to 1/1,
// which is a different rule from the Bool() coercion "&"/"|" use.
func evalUnary(e ast.Unary, env *Env) value.Value {
	v := Eval(e.Operand, env)
	switch e.Op {
	case ast.Denom:
		n, ok := value.AsNumber(v)
		if !ok {
			return value.Null
		}
		return value.Number{Rational: rational.New(n.Denom(), rational.One.Denom())}
	case ast.Not:
		n, ok := value.AsNumber(v)
		if ok && n.Eq(rational.One) {
			return value.FromBool(false)
		}
		return value.FromBool(true)
	}
	panic("eval: unknown unary operator")
}

// evalBinary implements the arithmetic, comparison, and
// logical binary operators. Left is fully reduced, including side
// effects, before right.
func evalBinary(e ast.Binary, env *Env) value.Value {
	left := Eval(e.Left, env)
	right := Eval(e.Right, env)

	ln, lok := value.AsNumber(left)
	rn, rok := value.AsNumber(right)
	bothNumbers := lok && rok

	if fn, ok := arithOps[e.Op]; ok {
		if !bothNumbers {
			return value.Null
		}
		return value.Number{Rational: fn(ln, rn)}
	}

	switch e.Op {
	case ast.Eq:
		if !bothNumbers {
			return value.FromBool(false)
		}
		return value.FromBool(ln.Eq(rn))
	case ast.Gt:
		if !bothNumbers {
			return value.FromBool(false)
		}
		return value.FromBool(ln.Gt(rn))
	case ast.Lt:
		if !bothNumbers {
			return value.FromBool(false)
		}
		return value.FromBool(ln.Lt(rn))
	case ast.And:
		if !bothNumbers {
			return value.FromBool(false)
		}
		return value.FromBool(ln.Bool() && rn.Bool())
	case ast.Or:
		if !bothNumbers {
			return value.FromBool(false)
		}
		return value.FromBool(ln.Bool() || rn.Bool())
	}
	panic("eval: unknown binary operator")
}
