package parser

import (
	"math/big"

	"github.com/pkg/errors"

	"noodle/ast"
	"noodle/rational"
)

// ErrParse wraps every grammar-to-tree conversion failure; all parse
// errors are fatal.
var ErrParse = errors.New("parser: malformed source")

func convertProgram(g *grammarProgram) (ast.BowlLit, error) {
	return convertBowlLit(g.Bowl)
}

func convertBowlLit(g *grammarBowlLit) (ast.BowlLit, error) {
	noodles := make([]ast.Noodle, 0, len(g.Noodles))
	for _, n := range g.Noodles {
		key, err := convertExpr(n.Key)
		if err != nil {
			return ast.BowlLit{}, err
		}
		body, err := convertExpr(n.Body)
		if err != nil {
			return ast.BowlLit{}, err
		}
		noodles = append(noodles, ast.Noodle{Key: key, Body: body})
	}
	return ast.BowlLit{Noodles: noodles}, nil
}

func convertExpr(g *grammarExpr) (ast.Expr, error) {
	left, err := convertOr(g.Left)
	if err != nil {
		return nil, err
	}
	if g.Value == nil {
		return left, nil
	}
	idx, ok := left.(ast.Index)
	if !ok {
		return nil, errors.Wrap(ErrParse, "assignment target must be a bowl or memory index (B:K = V)")
	}
	value, err := convertExpr(g.Value)
	if err != nil {
		return nil, err
	}
	return ast.Assign{Bowl: idx.Bowl, Key: idx.Key, Value: value}, nil
}

func convertOr(g *grammarOr) (ast.Expr, error) {
	acc, err := convertAnd(g.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range g.Rest {
		right, err := convertAnd(tail.Right)
		if err != nil {
			return nil, err
		}
		acc = ast.Binary{Op: ast.Or, Left: acc, Right: right}
	}
	return acc, nil
}

func convertAnd(g *grammarAnd) (ast.Expr, error) {
	acc, err := convertCmp(g.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range g.Rest {
		right, err := convertCmp(tail.Right)
		if err != nil {
			return nil, err
		}
		acc = ast.Binary{Op: ast.And, Left: acc, Right: right}
	}
	return acc, nil
}

func convertCmp(g *grammarCmp) (ast.Expr, error) {
	left, err := convertAdd(g.Left)
	if err != nil {
		return nil, err
	}
	if g.Op == nil {
		return left, nil
	}
	right, err := convertAdd(g.Right)
	if err != nil {
		return nil, err
	}
	var op ast.BinOp
	switch *g.Op {
	case "?=":
		op = ast.Eq
	case ">":
		op = ast.Gt
	case "<":
		op = ast.Lt
	default:
		return nil, errors.Wrapf(ErrParse, "unknown comparison operator %q", *g.Op)
	}
	return ast.Binary{Op: op, Left: left, Right: right}, nil
}

func convertAdd(g *grammarAdd) (ast.Expr, error) {
	acc, err := convertMul(g.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range g.Rest {
		right, err := convertMul(tail.Right)
		if err != nil {
			return nil, err
		}
		var op ast.BinOp
		if tail.Op == "+" {
			op = ast.Add
		} else {
			op = ast.Sub
		}
		acc = ast.Binary{Op: op, Left: acc, Right: right}
	}
	return acc, nil
}

func convertMul(g *grammarMul) (ast.Expr, error) {
	acc, err := convertIndex(g.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range g.Rest {
		right, err := convertIndex(tail.Right)
		if err != nil {
			return nil, err
		}
		var op ast.BinOp
		if tail.Op == "*" {
			op = ast.Mul
		} else {
			op = ast.Div
		}
		acc = ast.Binary{Op: op, Left: acc, Right: right}
	}
	return acc, nil
}

func convertIndex(g *grammarIndex) (ast.Expr, error) {
	acc, err := convertUnary(g.Left)
	if err != nil {
		return nil, err
	}
	for _, k := range g.Keys {
		key, err := convertUnary(k)
		if err != nil {
			return nil, err
		}
		acc = ast.Index{Bowl: acc, Key: key}
	}
	return acc, nil
}

func convertUnary(g *grammarUnary) (ast.Expr, error) {
	operand, err := convertPrimary(g.Operand)
	if err != nil {
		return nil, err
	}
	// Prefix operators apply innermost-first: "^!E" negates E, then
	// takes the denominator of the result.
	for i := len(g.Ops) - 1; i >= 0; i-- {
		var op ast.UnaryOp
		switch g.Ops[i] {
		case "^":
			op = ast.Denom
		case "!":
			op = ast.Not
		default:
			return nil, errors.Wrapf(ErrParse, "unknown unary operator %q", g.Ops[i])
		}
		operand = ast.Unary{Op: op, Operand: operand}
	}
	return operand, nil
}

func convertPrimary(g *grammarPrimary) (ast.Expr, error) {
	switch {
	case g.Literal != nil:
		return convertLiteral(g.Literal)
	case g.Bowl != nil:
		b, err := convertBowlLit(g.Bowl)
		if err != nil {
			return nil, err
		}
		return b, nil
	case g.Memory:
		return ast.Memory{}, nil
	case g.Paren != nil:
		return convertExpr(g.Paren)
	}
	return nil, errors.Wrap(ErrParse, "empty primary expression")
}

func convertLiteral(g *grammarLiteral) (ast.Expr, error) {
	num, ok := new(big.Int).SetString(g.Num, 10)
	if !ok {
		return nil, errors.Wrapf(ErrParse, "malformed integer literal %q", g.Num)
	}
	den := big.NewInt(1)
	if g.Den != nil {
		den, ok = new(big.Int).SetString(*g.Den, 10)
		if !ok {
			return nil, errors.Wrapf(ErrParse, "malformed integer literal %q", *g.Den)
		}
	}
	if den.Sign() == 0 {
		return nil, errors.Wrap(ErrParse, "literal denominator must not be zero")
	}
	return ast.Lit{Value: rational.New(num, den)}, nil
}
