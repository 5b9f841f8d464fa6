package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noodle/ast"
	"noodle/ioadapter"
	"noodle/memory"
	"noodle/rational"
	"noodle/value"
)

func newTestEnv(input []byte, out *bytes.Buffer) *Env {
	io := ioadapter.Buffer(input, out)
	mem := memory.New(io, nil)
	return NewEnv(value.NewBowl(), mem, nil)
}

func lit(n, d int64) ast.Expr { return ast.Lit{Value: rational.NewInt64(n, d)} }

func TestEvalLiteral(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	got := Eval(lit(3, 4), env)
	n, ok := value.AsNumber(got)
	require.True(t, ok)
	assert.True(t, n.Eq(rational.NewInt64(3, 4)))
}

func TestEvalArithmetic(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	expr := ast.Binary{Op: ast.Add, Left: lit(1, 2), Right: lit(1, 3)}
	got := Eval(expr, env)
	n, ok := value.AsNumber(got)
	require.True(t, ok)
	assert.True(t, n.Eq(rational.NewInt64(5, 6)))
}

func TestEvalArithmeticTypeMismatchIsNull(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	expr := ast.Binary{Op: ast.Add, Left: ast.BowlLit{}, Right: lit(1, 1)}
	got := Eval(expr, env)
	assert.True(t, value.IsNull(got))
}

func TestEvalComparisons(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	assert.True(t, value.Bool(Eval(ast.Binary{Op: ast.Eq, Left: lit(1, 2), Right: lit(2, 4)}, env)))
	assert.True(t, value.Bool(Eval(ast.Binary{Op: ast.Gt, Left: lit(3, 1), Right: lit(2, 1)}, env)))
	assert.True(t, value.Bool(Eval(ast.Binary{Op: ast.Lt, Left: lit(1, 1), Right: lit(2, 1)}, env)))
	// Type mismatches in a comparison yield 0/1, not Null.
	mismatch := Eval(ast.Binary{Op: ast.Eq, Left: ast.BowlLit{}, Right: lit(1, 1)}, env)
	assert.False(t, value.IsNull(mismatch))
	assert.False(t, value.Bool(mismatch))
}

func TestEvalLogical(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	assert.True(t, value.Bool(Eval(ast.Binary{Op: ast.And, Left: lit(1, 1), Right: lit(5, 1)}, env)))
	assert.False(t, value.Bool(Eval(ast.Binary{Op: ast.And, Left: lit(0, 1), Right: lit(5, 1)}, env)))
	assert.True(t, value.Bool(Eval(ast.Binary{Op: ast.Or, Left: lit(0, 1), Right: lit(1, 1)}, env)))
}

func TestEvalNotAsymmetry(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	// !(1/1) == 0/1
	assert.False(t, value.Bool(Eval(ast.Unary{Op: ast.Not, Operand: lit(1, 1)}, env)))
	// !(anything else, including other nonzero numbers) == 1/1
	assert.True(t, value.Bool(Eval(ast.Unary{Op: ast.Not, Operand: lit(2, 1)}, env)))
	assert.True(t, value.Bool(Eval(ast.Unary{Op: ast.Not, Operand: lit(0, 1)}, env)))
	assert.True(t, value.Bool(Eval(ast.Unary{Op: ast.Not, Operand: ast.BowlLit{}}, env)))
}

func TestEvalDenominator(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	got := Eval(ast.Unary{Op: ast.Denom, Operand: lit(3, 4)}, env)
	n, ok := value.AsNumber(got)
	require.True(t, ok)
	assert.Equal(t, int64(4), n.Num().Int64())
	assert.Equal(t, int64(1), n.Denom().Int64())
}

func TestEvalBowlLiteralAndIndex(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	bowlExpr := ast.BowlLit{Noodles: []ast.Noodle{
		{Key: lit(0, 1), Body: lit(72, 1)},
		{Key: lit(1, 1), Body: lit(69, 1)},
	}}
	read := ast.Index{Bowl: bowlExpr, Key: lit(1, 1)}
	got := Eval(read, env)
	n, ok := value.AsNumber(got)
	require.True(t, ok)
	assert.Equal(t, int64(69), n.Num().Int64())
}

func TestEvalBowlWriteThenRead(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	root := ast.ValueLit{Value: env.Root}

	write := ast.Assign{Bowl: root, Key: lit(5, 1), Value: lit(99, 1)}
	assert.True(t, value.IsNull(Eval(write, env)))

	read := ast.Index{Bowl: root, Key: lit(5, 1)}
	got := Eval(read, env)
	n, ok := value.AsNumber(got)
	require.True(t, ok)
	assert.Equal(t, int64(99), n.Num().Int64())
}

func TestEvalMemoryIOWriteAndRead(t *testing.T) {
	var out bytes.Buffer
	env := newTestEnv([]byte("hi"), &out)

	inputBowl := ast.Index{Bowl: ast.Memory{}, Key: lit(1, 1)}
	got := Eval(inputBowl, env)
	b, ok := value.AsBowl(got)
	require.True(t, ok)
	assert.Equal(t, 2, b.Len())

	// Input is drained by the first read, so write back the Bowl that
	// read produced rather than reading @:1 a second time.
	write := ast.Assign{Bowl: ast.Memory{}, Key: lit(1, 1), Value: ast.ValueLit{Value: got}}
	Eval(write, env)
	assert.Equal(t, "hi", out.String())
}

func TestEvalMemoryCursorReadIsNullBeforeFirstStep(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	got := Eval(ast.Index{Bowl: ast.Memory{}, Key: lit(0, 1)}, env)
	assert.True(t, value.IsNull(got))
}

func TestEvalMemoryCursorWriteIsIgnored(t *testing.T) {
	env := newTestEnv(nil, &bytes.Buffer{})
	write := ast.Assign{Bowl: ast.Memory{}, Key: lit(0, 1), Value: lit(42, 1)}
	Eval(write, env)
	got := Eval(ast.Index{Bowl: ast.Memory{}, Key: lit(0, 1)}, env)
	assert.True(t, value.IsNull(got), "writes to @:0 must be suppressed")
}

func TestEvalOutputRejectsNonByteValues(t *testing.T) {
	var out bytes.Buffer
	env := newTestEnv(nil, &out)
	bad := ast.BowlLit{Noodles: []ast.Noodle{{Key: lit(0, 1), Body: lit(1000, 1)}}}

	assert.Panics(t, func() {
		Eval(ast.Assign{Bowl: ast.Memory{}, Key: lit(1, 1), Value: bad}, env)
	})
}
