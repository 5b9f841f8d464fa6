// Package ast defines the immutable expression tree the parser
// produces and the evaluator consumes. The tree is pure data: it
// knows nothing about evaluation, Bowls, or Memory, so that the
// tree-walking core lives entirely in package eval.
package ast

import (
	"noodle/rational"
	"noodle/value"
)

// Expr is the sum type every node in the tree implements. It exists
// purely as a marker so the eval switch has something to type-switch
// on; nodes carry no behavior of their own.
type Expr interface {
	exprNode()
}

// Lit is a literal rational-number constant, e.g. "3/4" or "72",
// exactly as the grammar's literal production produces it.
type Lit struct {
	Value rational.Rational
}

func (Lit) exprNode() {}

// ValueLit wraps an already-evaluated runtime Value as a literal
// expression node. The evaluator never produces ValueLit from source
// text — only Bowl.Write (replacing a matched Noodle's body) and
// Memory's host-input Bowl construction need to
// turn a Value back into something the tree can hold.
type ValueLit struct {
	Value value.Value
}

func (ValueLit) exprNode() {}

// Noodle is one entry of a Bowl literal: a key expression paired with
// a body expression.
type Noodle struct {
	Key  Expr
	Body Expr
}

// BowlLit constructs a fresh Bowl from a literal sequence of Noodles,
// i.e. "{ [k1;v1] [k2;v2] ... }".
type BowlLit struct {
	Noodles []Noodle
}

func (BowlLit) exprNode() {}

// Memory is the "@" symbol, a reference to the process-wide Memory
// Bowl.
type Memory struct{}

func (Memory) exprNode() {}

// Index is a bowl-read "B:K" or memory-read "@:K".
type Index struct {
	Bowl Expr
	Key  Expr
}

func (Index) exprNode() {}

// Assign is a bowl-write "B:K = V" or memory-write "@:K = V".
type Assign struct {
	Bowl  Expr
	Key   Expr
	Value Expr
}

func (Assign) exprNode() {}

// UnaryOp enumerates the two unary operators.
type UnaryOp int

const (
	// Denom extracts the denominator of a Number: "^E".
	Denom UnaryOp = iota
	// Not is logical negation by equality with one/1: "!E".
	Not
)

// Unary is a unary-operator application.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (Unary) exprNode() {}

// BinOp enumerates the arithmetic, logical, and comparison binary
// operators.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	And
	Or
	Eq
	Gt
	Lt
)

// Binary is a binary-operator application; left is always reduced
// (including side effects) before right.
type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (Binary) exprNode() {}
