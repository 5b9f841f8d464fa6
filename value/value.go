// Package value implements the Bowl language's tagged-union runtime
// value and the Bowl aggregate itself. Both live in one package, the
// way a numeric tower of mutually referential variants is kept in a
// single value package: Bowl and Value are mutually referential (a
// Bowl holds Noodles that evaluate to Values, and a Value may be a
// Bowl reference) and splitting them would only introduce an import
// cycle for no benefit.
package value

import "noodle/rational"

// Value is the tagged union: exactly one of Number,
// *Bowl, or Null populates the interface at a time.
type Value interface {
	// isValue is unexported so Value is a closed union: only this
	// package may introduce new variants.
	isValue()

	// String renders the value as text for diagnostics and tests.
	String() string
}

// Number wraps a canonical Rational.
type Number struct {
	Rational rational.Rational
}

func (Number) isValue() {}

func (n Number) String() string { return n.Rational.String() }

// nullValue is the absence/type-mismatch sentinel. There is
// a single instance, Null.
type nullValue struct{}

func (nullValue) isValue() {}

func (nullValue) String() string { return "null" }

// Null is the single Null value.
var Null Value = nullValue{}

// IsNull reports whether v is the Null sentinel.
func IsNull(v Value) bool {
	_, ok := v.(nullValue)
	return ok
}

// AsNumber extracts the Rational from a Value, reporting whether v
// was actually a Number.
func AsNumber(v Value) (rational.Rational, bool) {
	n, ok := v.(Number)
	if !ok {
		return rational.Rational{}, false
	}
	return n.Rational, true
}

// AsBowl extracts the *Bowl from a Value, reporting whether v was
// actually a Bowl reference.
func AsBowl(v Value) (*Bowl, bool) {
	b, ok := v.(*Bowl)
	return b, ok
}

// Bool applies the boolean-coercion rule to a Value: true iff
// it is a Number with nonzero numerator. Non-Number values coerce to
// false, matching how & and | treat non-Number operands.
func Bool(v Value) bool {
	n, ok := v.(Number)
	return ok && n.Rational.Bool()
}

// FromBool renders a bool as the canonical 1/1 or 0/1 Number
// every predicate result uses.
func FromBool(b bool) Value {
	if b {
		return Number{Rational: rational.One}
	}
	return Number{Rational: rational.Zero}
}
