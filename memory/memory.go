// Package memory implements the distinguished "@" Bowl: a Bowl-like
// entity whose keys 0 and 1 carry special
// behavior — cursor readback and host byte-stream I/O — with every
// other key behaving as an ordinary Bowl entry.
package memory

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"noodle/ast"
	"noodle/ioadapter"
	"noodle/rational"
	"noodle/value"
)

// CursorKey and IOKey are the two distinguished keys Memory
// defines. Every other key behaves as plain Bowl storage.
var (
	CursorKey = rational.NewInt64(0, 1)
	IOKey     = rational.NewInt64(1, 1)
)

// ErrNonByteOutput is the fatal I/O type error: a value written to
// key 1 that is not an integer in [0,255].
var ErrNonByteOutput = errors.New("memory: output bowl entry is not a byte 0..255")

// Memory is the process-wide "@" Bowl. The zero value is not usable;
// construct with New.
type Memory struct {
	bowl   *value.Bowl
	io     ioadapter.Adapter
	cursor *rational.Rational // nil until the scheduler fires its first Noodle
	log    *zap.Logger
}

// New constructs Memory bound to the given host I/O adapter. log may
// be nil in tests, in which case a no-op logger is used.
func New(io ioadapter.Adapter, log *zap.Logger) *Memory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Memory{bowl: value.NewBowl(), io: io, log: log}
}

// SetCursor is called exclusively by the scheduler after it selects
// the next Noodle. No other caller may advance the
// cursor, preserving the invariant that Memory key 0 is
// read-only from program code.
func (m *Memory) SetCursor(c rational.Rational) {
	m.cursor = &c
}

// Cursor reports the current cursor value, or false before the first
// Noodle has fired.
func (m *Memory) Cursor() (rational.Rational, bool) {
	if m.cursor == nil {
		return rational.Rational{}, false
	}
	return *m.cursor, true
}

// Read implements the read schema for key, delegating to the
// ordinary Bowl scan (value.Bowl.Read) for any key other than 0 and
// 1. eval is threaded through exactly as a plain Bowl needs it.
func (m *Memory) Read(key rational.Rational, eval value.EvalFunc) value.Value {
	switch {
	case key.Eq(CursorKey):
		cur, ok := m.Cursor()
		if !ok {
			return value.Null
		}
		return value.Number{Rational: cur}
	case key.Eq(IOKey):
		return m.readInput()
	default:
		return m.bowl.Read(key, eval)
	}
}

// readInput consumes the complete host input exactly once: the
// first read of key 1 drains the adapter; later reads of key
// 1 return a freshly-built, now-empty Bowl, matching "consumes all
// remaining bytes."
func (m *Memory) readInput() value.Value {
	bytes := m.io.ReadAll()
	b := value.NewBowl()
	for i, by := range bytes {
		b.Append(value.Noodle{
			Key:  ast.ValueLit{Value: value.Number{Rational: rational.NewInt64(int64(i), 1)}},
			Body: ast.ValueLit{Value: value.Number{Rational: rational.NewInt64(int64(by), 1)}},
		})
	}
	m.log.Debug("memory: consumed host input", zap.Int("bytes", len(bytes)))
	return b
}

// Write implements the write schema: key 0 writes are
// suppressed (the scheduler owns the cursor), key 1 triggers the host
// output adapter, and any other key behaves as an ordinary Bowl
// write.
func (m *Memory) Write(key rational.Rational, v value.Value, eval value.EvalFunc, keyLit, valLit func(value.Value) value.Expr) error {
	switch {
	case key.Eq(CursorKey):
		// Writes to the cursor are silently ignored.
		return nil
	case key.Eq(IOKey):
		return m.writeOutput(v, eval)
	default:
		m.bowl.Write(key, v, eval, keyLit, valLit)
		return nil
	}
}

// writeOutput implements the Memory key-1 write contract: v must be a
// Bowl whose entries hold byte values 0..255, enumerated in key order
// (not assumed-contiguous index order) and emitted to the host output
// adapter. Evaluating each Noodle's own key, rather than probing
// 0..Len()-1, keeps a gapped or non-zero-based key set from silently
// truncating or misaligning the output.
func (m *Memory) writeOutput(v value.Value, eval value.EvalFunc) error {
	b, ok := value.AsBowl(v)
	if !ok {
		return errors.Wrap(ErrNonByteOutput, "value written to @:1 is not a bowl")
	}
	type keyedEntry struct {
		key   rational.Rational
		entry value.Noodle
	}
	entries := make([]keyedEntry, 0, b.Len())
	for i, n := range b.Noodles() {
		kv := eval(n.Key)
		kr, ok := value.AsNumber(kv)
		if !ok {
			return errors.Wrapf(ErrNonByteOutput, "entry %d has a non-number key", i)
		}
		entries = append(entries, keyedEntry{key: kr, entry: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key.Lt(entries[j].key) })

	out := make([]byte, 0, len(entries))
	for _, e := range entries {
		bodyVal := eval(e.entry.Body)
		r, ok := value.AsNumber(bodyVal)
		if !ok {
			return errors.Wrapf(ErrNonByteOutput, "key %s is not a number", e.key.String())
		}
		iv, ok := r.Int64()
		if !ok || iv < 0 || iv > 255 {
			return errors.Wrapf(ErrNonByteOutput, "key %s has value %s", e.key.String(), r.String())
		}
		out = append(out, byte(iv))
	}
	if err := m.io.WriteAll(out); err != nil {
		return errors.Wrap(err, "host output adapter")
	}
	m.log.Debug("memory: emitted host output", zap.Int("bytes", len(out)))
	return nil
}
