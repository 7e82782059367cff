// Package godual implements forward-mode automatic differentiation with
// dual numbers.
//
// A dual number pairs a primal value with a tangent: the exact first
// derivative of that value with respect to one seeded parameter. Every
// operator and elementary function propagates the tangent with the sum,
// product, quotient or chain rule, so evaluating an ordinary computation on
// duals yields its value and its derivative in a single pass.
//
// Design goals:
//   - Zero-overhead generics over the scalar type
//   - Exact fields (Rational) and approximate ones (Float64) share one core
//   - Scalar semantics are inherited, never intercepted (IEEE Inf/NaN stay)
//   - An open catalog of elementary functions keyed by name
//
// Example:
//
//	x := godual.Param(godual.Float64(4))
//	y := godual.Sqrt(x).MulScalar(3)
//	fmt.Println(y.Real(), y.Dual()) // 6 0.75
package godual

// ============================================================
// Scalar capability hierarchy
// ============================================================

// Identities supplies the additive and multiplicative identities of T.
// The receiver is never inspected, so the zero value of T may be used.
type Identities[T any] interface {
	Zero() T
	One() T
}

// PseudoField is a scalar closed under + - * / whose division is always
// defined but need not be an exact inverse. IEEE floating point is the
// canonical example: x/0 yields a sentinel (Inf or NaN) instead of failing.
type PseudoField[T any] interface {
	Identities[T]
	Neg() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Equal(T) bool
}

// Field is a PseudoField satisfying the field axioms: every nonzero element
// has an exact multiplicative inverse. Inv reports ErrDivisionByZero for the
// additive identity instead of producing a sentinel.
//
// Algorithms that rely on exact inverses should require Field; floating
// point types deliberately do not implement it.
type Field[T any] interface {
	PseudoField[T]
	Inv() (T, error)
	IsZero() bool
}
