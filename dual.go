package godual

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// ============================================================
// DualNum — (primal, tangent) pair
// ============================================================

// DualNum is the dual number re + du·ε with ε² = 0. The tangent du is the
// derivative of re with respect to the single parameter that seeded the
// computation. DualNum is an immutable value: every operation returns a new
// one. The zero value equals Constant(0).
type DualNum[T PseudoField[T]] struct {
	re T
	du T
}

// New returns the dual number with the given primal and tangent.
func New[T PseudoField[T]](primal, tangent T) DualNum[T] {
	return DualNum[T]{re: primal, du: tangent}
}

// Constant returns value with zero sensitivity to the parameter.
func Constant[T PseudoField[T]](value T) DualNum[T] {
	return DualNum[T]{re: value, du: value.Zero()}
}

// Param returns value seeded as the differentiation variable: its tangent
// is the multiplicative identity, since dx/dx = 1.
func Param[T PseudoField[T]](value T) DualNum[T] {
	return DualNum[T]{re: value, du: value.One()}
}

func (d DualNum[T]) Primal() T { return d.re }
func (d DualNum[T]) Real() T   { return d.re }
func (d DualNum[T]) Dual() T   { return d.du }

// Equal reports whether both components are equal under T's equality.
// For Float64 this is IEEE equality, so a NaN component is never equal.
func (d DualNum[T]) Equal(o DualNum[T]) bool {
	return d.re.Equal(o.re) && d.du.Equal(o.du)
}

func (d DualNum[T]) String() string { return fmt.Sprintf("%v + %vε", d.re, d.du) }
func (d DualNum[T]) LaTeX() string  { return fmt.Sprintf("%v + %v\\varepsilon", d.re, d.du) }

// ApproxEqual reports whether a and b agree componentwise within tol,
// either absolutely or relative to the larger magnitude.
func ApproxEqual(a, b DualNum[Float64], tol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a.re), float64(b.re), tol, tol) &&
		scalar.EqualWithinAbsOrRel(float64(a.du), float64(b.du), tol, tol)
}
