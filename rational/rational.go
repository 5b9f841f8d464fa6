// Package rational implements arbitrary-precision signed rational
// arithmetic reduced to lowest terms, the numeric foundation of every
// Bowl value.
package rational

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// ErrDivByZero is the error wrapped into a fatal diagnostic whenever
// a division (construction or arithmetic) would require a zero
// denominator.
var ErrDivByZero = errors.New("rational: division by zero")

// Rational is a canonical signed fraction: the denominator is always
// strictly positive and numerator/denominator share no common factor
// greater than one. The zero value is not a valid Rational; use Zero
// or New.
type Rational struct {
	r *big.Rat
}

// Zero and One are the two constants the evaluator returns for every
// boolean-valued expression (comparisons and logical operators).
var (
	Zero = New(big.NewInt(0), big.NewInt(1))
	One  = New(big.NewInt(1), big.NewInt(1))
)

// New constructs a canonical Rational from a signed numerator and a
// denominator. A zero denominator is a fatal construction error.
func New(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		panic(errors.Wrap(ErrDivByZero, "rational.New"))
	}
	r := new(big.Rat).SetFrac(num, den)
	return Rational{r: r}
}

// NewInt64 is a convenience constructor for small literal constants
// used throughout the evaluator and tests.
func NewInt64(num, den int64) Rational {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromString parses a decimal integer or "num/den" literal with
// big.Rat.SetString, which also accepts forms the grammar's literal
// production does not (a leading sign, decimal points, exponents).
func FromString(s string) (Rational, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, false
	}
	if r.Denom().Sign() == 0 {
		return Rational{}, false
	}
	return Rational{r: r}, true
}

func (a Rational) bigRat() *big.Rat {
	if a.r == nil {
		return new(big.Rat).Set(Zero.r)
	}
	return a.r
}

// Num returns the canonical numerator.
func (a Rational) Num() *big.Int { return new(big.Int).Set(a.bigRat().Num()) }

// Denom returns the canonical, strictly positive denominator.
func (a Rational) Denom() *big.Int { return new(big.Int).Set(a.bigRat().Denom()) }

// Neg returns -a.
func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.bigRat())}
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.bigRat(), b.bigRat())}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.bigRat(), b.bigRat())}
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.bigRat(), b.bigRat())}
}

// Div returns a / b. Division by zero is fatal.
func (a Rational) Div(b Rational) Rational {
	if b.bigRat().Sign() == 0 {
		panic(errors.Wrap(ErrDivByZero, "Rational.Div"))
	}
	return Rational{r: new(big.Rat).Quo(a.bigRat(), b.bigRat())}
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater
// than b.
func (a Rational) Cmp(b Rational) int {
	return a.bigRat().Cmp(b.bigRat())
}

// Eq, Lt, Gt, Le, Ge are the comparison predicates.
func (a Rational) Eq(b Rational) bool { return a.Cmp(b) == 0 }
func (a Rational) Lt(b Rational) bool { return a.Cmp(b) < 0 }
func (a Rational) Gt(b Rational) bool { return a.Cmp(b) > 0 }
func (a Rational) Le(b Rational) bool { return a.Cmp(b) <= 0 }
func (a Rational) Ge(b Rational) bool { return a.Cmp(b) >= 0 }

// Bool is the boolean-coercion rule used uniformly for predicates and
// Bowl-style conditionals: true iff the numerator is nonzero.
func (a Rational) Bool() bool {
	return a.bigRat().Sign() != 0
}

// And and Or implement logical conjunction/disjunction over the
// boolean coercion.
func (a Rational) And(b Rational) Rational {
	return boolRational(a.Bool() && b.Bool())
}

func (a Rational) Or(b Rational) Rational {
	return boolRational(a.Bool() || b.Bool())
}

func boolRational(b bool) Rational {
	if b {
		return One
	}
	return Zero
}

// IsInt reports whether the Rational's denominator is 1.
func (a Rational) IsInt() bool {
	return a.bigRat().IsInt()
}

// Int64 reports a as an int64 plus whether the conversion was exact
// and in range — used by the host I/O adapter to validate byte
// values.
func (a Rational) Int64() (int64, bool) {
	if !a.IsInt() {
		return 0, false
	}
	n := a.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// String renders a canonical "num/den" form, matching the grammar's
// literal syntax.
func (a Rational) String() string {
	return fmt.Sprintf("%s/%s", a.Num().String(), a.Denom().String())
}
