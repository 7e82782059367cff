package godual

import (
	"fmt"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ============================================================
// Float64 — IEEE-754 PseudoField
// ============================================================

// Float64 is float64 with the PseudoField method set. Division follows
// IEEE-754: a zero divisor yields ±Inf or NaN, never a panic.
type Float64 float64

// Float converts any Go integer or float to Float64.
func Float[V constraints.Integer | constraints.Float](v V) Float64 { return Float64(v) }

func (Float64) Zero() Float64           { return 0 }
func (Float64) One() Float64            { return 1 }
func (f Float64) Neg() Float64          { return -f }
func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }
func (f Float64) Equal(o Float64) bool  { return f == o }
func (f Float64) Float64() float64      { return float64(f) }
func (f Float64) String() string        { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// ============================================================
// Rational — exact Field over math/big
// ============================================================

// Rational is an immutable exact rational number. The zero value is 0.
// Every operation allocates a fresh big.Rat; operands are never modified.
type Rational struct{ r *big.Rat }

// Int returns the rational n/1.
func Int[I constraints.Integer](n I) Rational {
	return Rational{r: new(big.Rat).SetInt(bigInt(n))}
}

// Frac returns the rational p/q in lowest terms. It panics if q is zero.
func Frac[I constraints.Integer](p, q I) Rational {
	if q == 0 {
		panic("godual: denominator is zero")
	}
	return Rational{r: new(big.Rat).SetFrac(bigInt(p), bigInt(q))}
}

// RatFromFloat returns the exact value of f. It reports false for Inf and
// NaN, which have no rational value.
func RatFromFloat[F constraints.Float](f F) (Rational, bool) {
	r := new(big.Rat).SetFloat64(float64(f))
	if r == nil {
		return Rational{}, false
	}
	return Rational{r: r}, true
}

// ParseRational parses "a/b", an integer, or a decimal such as "1.25".
func ParseRational(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("godual: invalid rational %q", s)
	}
	return Rational{r: r}, nil
}

func bigInt[I constraints.Integer](n I) *big.Int {
	if n < 0 {
		return big.NewInt(int64(n))
	}
	return new(big.Int).SetUint64(uint64(n))
}

func (q Rational) rat() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return q.r
}

func (Rational) Zero() Rational            { return Rational{r: new(big.Rat)} }
func (Rational) One() Rational             { return Rational{r: big.NewRat(1, 1)} }
func (q Rational) Neg() Rational           { return Rational{r: new(big.Rat).Neg(q.rat())} }
func (q Rational) Add(o Rational) Rational { return Rational{r: new(big.Rat).Add(q.rat(), o.rat())} }
func (q Rational) Sub(o Rational) Rational { return Rational{r: new(big.Rat).Sub(q.rat(), o.rat())} }
func (q Rational) Mul(o Rational) Rational { return Rational{r: new(big.Rat).Mul(q.rat(), o.rat())} }
func (q Rational) Equal(o Rational) bool   { return q.rat().Cmp(o.rat()) == 0 }
func (q Rational) Cmp(o Rational) int      { return q.rat().Cmp(o.rat()) }
func (q Rational) IsZero() bool            { return q.rat().Sign() == 0 }
func (q Rational) Sign() int               { return q.rat().Sign() }
func (q Rational) String() string          { return q.rat().RatString() }

// Div returns q/o. A zero divisor is a domain error in an exact field, so
// Div panics with ErrDivisionByZero; use Inv or Quo to get an error instead.
func (q Rational) Div(o Rational) Rational {
	if o.IsZero() {
		panic(ErrDivisionByZero)
	}
	return Rational{r: new(big.Rat).Quo(q.rat(), o.rat())}
}

// Inv returns 1/q, or ErrDivisionByZero when q is zero.
func (q Rational) Inv() (Rational, error) {
	if q.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{r: new(big.Rat).Inv(q.rat())}, nil
}

// Rat returns a copy of the underlying big.Rat.
func (q Rational) Rat() *big.Rat { return new(big.Rat).Set(q.rat()) }

// Float64 returns the nearest float64 and whether it is exact.
func (q Rational) Float64() (float64, bool) { return q.rat().Float64() }

var (
	_ PseudoField[Float64] = Float64(0)
	_ Field[Rational]      = Rational{}
)
