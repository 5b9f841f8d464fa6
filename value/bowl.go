package value

import "noodle/rational"

// EvalFunc reduces an expression tree to a Value against whatever
// environment the caller closed over. It is how Bowl.Read/Write reach
// the evaluator (package eval) without this package importing it:
// package eval implements this package's Bowl in terms of itself,
// not the other way around, so the dependency only runs one way.
type EvalFunc func(expr Expr) Value

// Expr is the minimal shape Bowl needs from an expression node: the
// ability to be handed to an EvalFunc. Package ast's Expr satisfies
// this implicitly — any type works, since Go interfaces are
// structural and EvalFunc itself makes no assumptions. Declared here,
// rather than importing package ast's concrete type, to keep this
// package dependency-free of the tree shape.
type Expr interface{}

// Noodle is one entry of a Bowl: a key expression and a body
// expression. The key is re-evaluated on every access — it
// is never cached — so Noodle stores expressions, not values.
type Noodle struct {
	Key  Expr
	Body Expr
}

// Bowl is the ordered, mutable sequence of Noodles. The zero value is
// an empty Bowl, ready to use. Bowl
// values are always referenced through *Bowl so that aliasing two
// Value variables to the same Bowl makes mutations through either
// visible through both — the interior-mutability requirement,
// matching the pattern of binding variables to *Var rather than
// copying values.
type Bowl struct {
	noodles []Noodle
}

func (*Bowl) isValue() {}

func (b *Bowl) String() string {
	return "bowl"
}

// NewBowl constructs an empty Bowl, the runtime value of a literal
// "{}" or the Bowl host input produces (Memory key 1 read).
func NewBowl() *Bowl {
	return &Bowl{}
}

// Len reports the number of Noodles currently held, irrespective of
// their evaluated keys — used by the host output adapter to size its
// byte buffer (Memory key 1 write).
func (b *Bowl) Len() int {
	return len(b.noodles)
}

// Noodles exposes the live Noodle slice in insertion order, for
// callers (the scheduler, the host I/O adapter) that must scan every
// entry themselves rather than go through Read/Write.
func (b *Bowl) Noodles() []Noodle {
	return b.noodles
}

// Read implements Bowl.read: scan Noodles in insertion
// order, evaluating each key expression in turn, and return the body
// of the first Noodle whose evaluated key equals key. Returns Null on
// no match. eval is invoked once per examined key, and again for the
// matching body, preserving side-effect ordering
// (key before body, examined strictly in insertion order).
func (b *Bowl) Read(key rational.Rational, eval EvalFunc) Value {
	for _, n := range b.noodles {
		k := eval(n.Key)
		kr, ok := AsNumber(k)
		if !ok {
			continue
		}
		if kr.Eq(key) {
			return eval(n.Body)
		}
	}
	return Null
}

// Write implements Bowl.write: scan for a Noodle whose
// evaluated key matches, and replace its body with a literal wrapping
// v; if none matches, append a new Noodle. keyLit and valLit wrap a
// Value as a literal expression of the same Expr type the tree uses, so the replaced
// body never needs re-evaluation to reproduce v — the caller supplies
// it because only package eval/ast knows how to build a literal node.
func (b *Bowl) Write(key rational.Rational, v Value, eval EvalFunc, keyLit, valLit func(Value) Expr) {
	for i, n := range b.noodles {
		k := eval(n.Key)
		kr, ok := AsNumber(k)
		if !ok {
			continue
		}
		if kr.Eq(key) {
			b.noodles[i].Body = valLit(v)
			return
		}
	}
	b.noodles = append(b.noodles, Noodle{
		Key:  keyLit(Number{Rational: key}),
		Body: valLit(v),
	})
}

// Append adds a Noodle built directly from expression nodes, used by
// the evaluator when constructing a Bowl literal ("{ [k;v] ... }")
// where both key and body are already expressions, not yet values.
func (b *Bowl) Append(n Noodle) {
	b.noodles = append(b.noodles, n)
}
