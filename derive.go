package godual

// ============================================================
// Drivers
// ============================================================

// Derivative evaluates f at Param(x) and returns f(x) and f'(x).
func Derivative[T PseudoField[T]](f func(DualNum[T]) DualNum[T], x T) (value, slope T) {
	y := f(Param(x))
	return y.re, y.du
}

// Gradient returns f(xs) and its partial derivatives. f is evaluated once per
// variable with exactly that variable seeded as the parameter and all others
// held constant, so len(xs) passes are made. With no variables f runs once.
func Gradient[T PseudoField[T]](f func([]DualNum[T]) DualNum[T], xs []T) (value T, grad []T) {
	grad = make([]T, len(xs))
	args := make([]DualNum[T], len(xs))
	if len(xs) == 0 {
		return f(args).re, grad
	}
	for i := range xs {
		for j, x := range xs {
			if i == j {
				args[j] = Param(x)
			} else {
				args[j] = Constant(x)
			}
		}
		y := f(args)
		value, grad[i] = y.re, y.du
	}
	return value, grad
}
