package scheduler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noodle/ast"
	"noodle/eval"
	"noodle/ioadapter"
	"noodle/memory"
	"noodle/rational"
	"noodle/value"
)

func lit(n, d int64) ast.Expr { return ast.Lit{Value: rational.NewInt64(n, d)} }

func TestRunHaltsWithNoNextableNoodle(t *testing.T) {
	root := value.NewBowl()
	mem := memory.New(ioadapter.Buffer(nil, &bytes.Buffer{}), nil)
	s := New(root, mem, nil)
	require.NoError(t, s.Run(context.Background()))
	_, hasCursor := mem.Cursor()
	assert.False(t, hasCursor, "an empty program never fires, so the cursor stays absent")
}

func TestRunFiresSmallestNextableKeyFirstEachStep(t *testing.T) {
	root := value.NewBowl()
	mem := memory.New(ioadapter.Buffer(nil, &bytes.Buffer{}), nil)

	// Three noodles out of key order in the Bowl's insertion order;
	// the scheduler must still fire them 1, 2, 3. Each body appends its
	// own key as a decimal digit to Memory key 2 (@:2 = @:2*10 + k), so
	// the firing order reads back as 123.
	counter := ast.Index{Bowl: ast.Memory{}, Key: lit(2, 1)}
	record := func(k int64) ast.Expr {
		next := ast.Binary{Op: ast.Add, Left: ast.Binary{Op: ast.Mul, Left: counter, Right: lit(10, 1)}, Right: lit(k, 1)}
		return ast.Assign{Bowl: ast.Memory{}, Key: lit(2, 1), Value: next}
	}
	root.Append(value.Noodle{Key: lit(3, 1), Body: record(3)})
	root.Append(value.Noodle{Key: lit(1, 1), Body: record(1)})
	root.Append(value.Noodle{Key: lit(2, 1), Body: record(2)})

	env := eval.NewEnv(root, mem, nil)
	eval.Eval(ast.Assign{Bowl: ast.Memory{}, Key: lit(2, 1), Value: lit(0, 1)}, env)

	s := New(root, mem, nil)
	require.NoError(t, s.Run(context.Background()))

	cur, ok := mem.Cursor()
	require.True(t, ok)
	assert.Equal(t, int64(3), cur.Num().Int64(), "cursor ends at the last-fired key")

	order, ok := value.AsNumber(eval.Eval(counter, env))
	require.True(t, ok)
	assert.Equal(t, int64(123), order.Num().Int64(), "noodles fire in key order 1, 2, 3")
}

func TestRunHaltsAfterLastKey(t *testing.T) {
	root := value.NewBowl()
	mem := memory.New(ioadapter.Buffer(nil, &bytes.Buffer{}), nil)
	root.Append(value.Noodle{Key: lit(1, 1), Body: lit(0, 1)})

	s := New(root, mem, nil)
	require.NoError(t, s.Run(context.Background()))

	cur, ok := mem.Cursor()
	require.True(t, ok)
	assert.True(t, cur.Eq(rational.NewInt64(1, 1)))
}

func TestRunNonNumberKeyIsNeverNextable(t *testing.T) {
	root := value.NewBowl()
	mem := memory.New(ioadapter.Buffer(nil, &bytes.Buffer{}), nil)
	// A bowl-valued "key" never evaluates to a Number, so this noodle
	// must simply never fire, and the program halts immediately.
	root.Append(value.Noodle{Key: ast.BowlLit{}, Body: lit(0, 1)})

	s := New(root, mem, nil)
	require.NoError(t, s.Run(context.Background()))
	_, hasCursor := mem.Cursor()
	assert.False(t, hasCursor)
}

func TestRunPropagatesFatalDivisionByZero(t *testing.T) {
	root := value.NewBowl()
	mem := memory.New(ioadapter.Buffer(nil, &bytes.Buffer{}), nil)
	root.Append(value.Noodle{
		Key:  lit(1, 1),
		Body: ast.Binary{Op: ast.Div, Left: lit(1, 1), Right: lit(0, 1)},
	})

	s := New(root, mem, nil)
	err := s.Run(context.Background())
	assert.Error(t, err)
}
