package eval

import (
	"noodle/ast"
	"noodle/rational"
)

// arithOps is the shape of the four arithmetic binary operators: pure
// functions of two Rationals to a Rational, keyed by ast.BinOp. Using
// a table here, rather than a case in Eval's switch, mirrors a
// dispatch table indexed by operand type, generalized from "one
// function per value-tower type" to "one function per operator,"
// since this language's arithmetic operators are all Number-on-Number.
var arithOps = map[ast.BinOp]func(a, b rational.Rational) rational.Rational{
	ast.Add: func(a, b rational.Rational) rational.Rational { return a.Add(b) },
	ast.Sub: func(a, b rational.Rational) rational.Rational { return a.Sub(b) },
	ast.Mul: func(a, b rational.Rational) rational.Rational { return a.Mul(b) },
	ast.Div: func(a, b rational.Rational) rational.Rational { return a.Div(b) },
}
