package godual

import "fmt"

// ============================================================
// Arithmetic — sum, product and quotient rules
// ============================================================

func (d DualNum[T]) Neg() DualNum[T] { return DualNum[T]{re: d.re.Neg(), du: d.du.Neg()} }

// AddScalar returns d + c. A bare scalar has zero tangent.
func (d DualNum[T]) AddScalar(c T) DualNum[T] { return DualNum[T]{re: d.re.Add(c), du: d.du} }

func (d DualNum[T]) Add(o DualNum[T]) DualNum[T] {
	return DualNum[T]{re: d.re.Add(o.re), du: d.du.Add(o.du)}
}

func (d DualNum[T]) SubScalar(c T) DualNum[T] { return DualNum[T]{re: d.re.Sub(c), du: d.du} }

func (d DualNum[T]) Sub(o DualNum[T]) DualNum[T] {
	return DualNum[T]{re: d.re.Sub(o.re), du: d.du.Sub(o.du)}
}

// MulScalar returns d·c, scaling both components.
func (d DualNum[T]) MulScalar(c T) DualNum[T] {
	return DualNum[T]{re: d.re.Mul(c), du: d.du.Mul(c)}
}

// Mul applies the product rule: (x, x')·(y, y') = (xy, x'y + xy').
func (d DualNum[T]) Mul(o DualNum[T]) DualNum[T] {
	return DualNum[T]{
		re: d.re.Mul(o.re),
		du: d.du.Mul(o.re).Add(d.re.Mul(o.du)),
	}
}

func (d DualNum[T]) DivScalar(c T) DualNum[T] {
	return DualNum[T]{re: d.re.Div(c), du: d.du.Div(c)}
}

// Div applies the quotient rule: (x, x')/(y, y') = (x/y, (x'y - xy')/y²).
//
// A zero divisor is not guarded: the result is whatever T's division does,
// Inf/NaN for Float64 and a panic with ErrDivisionByZero for Rational.
func (d DualNum[T]) Div(o DualNum[T]) DualNum[T] {
	return DualNum[T]{
		re: d.re.Div(o.re),
		du: d.du.Mul(o.re).Sub(d.re.Mul(o.du)).Div(o.re.Mul(o.re)),
	}
}

// DivByReciprocal computes d/o as d·(y, -y')/y². It agrees with Div up to
// rounding but rounds once more per component.
func (d DualNum[T]) DivByReciprocal(o DualNum[T]) DualNum[T] {
	return d.Mul(DualNum[T]{re: o.re, du: o.du.Neg()}).DivScalar(o.re.Mul(o.re))
}

// Reciprocal returns Constant(0).Div(d). The result is the zero dual
// whenever d's primal is nonzero and otherwise carries Div's zero-divisor
// behavior. For the multiplicative inverse 1/d use Inv.
func (d DualNum[T]) Reciprocal() DualNum[T] {
	return Constant(d.re.Zero()).Div(d)
}

// Inv returns 1/d = (1/y, -y'/y²) with T's division semantics.
func (d DualNum[T]) Inv() DualNum[T] {
	return Constant(d.re.One()).Div(d)
}

// ============================================================
// Checked division over exact fields
// ============================================================

// Quo returns a/b, or an error wrapping ErrDivisionByZero when b's primal
// is zero. Only Field scalars qualify; floating point keeps IEEE semantics
// through Div.
func Quo[T Field[T]](a, b DualNum[T]) (DualNum[T], error) {
	if b.re.IsZero() {
		return DualNum[T]{}, fmt.Errorf("godual: (%v) / (%v): %w", a, b, ErrDivisionByZero)
	}
	return a.Div(b), nil
}

// Inverse returns 1/d, or an error wrapping ErrDivisionByZero.
func Inverse[T Field[T]](d DualNum[T]) (DualNum[T], error) {
	return Quo(Constant(d.re.One()), d)
}
