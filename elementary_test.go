package godual_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/njchilds90/godual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// ============================================================
// Known values
// ============================================================

func TestSqrt_AtFour(t *testing.T) {
	re, du := parts(godual.Sqrt(godual.Param(godual.Float64(4))))
	assert.Equal(t, 2.0, re)
	assert.Equal(t, 0.25, du)
}

func TestExp_AtOrigin(t *testing.T) {
	re, du := parts(godual.Exp(godual.Param(godual.Float64(0))))
	assert.Equal(t, 1.0, re)
	assert.Equal(t, 1.0, du)
}

func TestSin_AtOrigin(t *testing.T) {
	re, du := parts(godual.Sin(godual.Param(godual.Float64(0))))
	assert.Equal(t, 0.0, re)
	assert.Equal(t, 1.0, du)
}

func TestCos_AtOrigin(t *testing.T) {
	re, du := parts(godual.Cos(godual.Param(godual.Float64(0))))
	assert.Equal(t, 1.0, re)
	assert.Equal(t, 0.0, du)
}

func TestExp2_Log2_Log10(t *testing.T) {
	re, du := parts(godual.Exp2(godual.Param(godual.Float64(3))))
	assert.Equal(t, 8.0, re)
	assert.InDelta(t, 8*math.Ln2, du, tol)

	re, du = parts(godual.Log2(godual.Param(godual.Float64(8))))
	assert.Equal(t, 3.0, re)
	assert.InDelta(t, 1/(8*math.Ln2), du, tol)

	re, du = parts(godual.Log10(godual.Param(godual.Float64(100))))
	assert.InDelta(t, 2.0, re, tol)
	assert.InDelta(t, 1/(100*math.Ln10), du, tol)
}

func TestLn_AtOne(t *testing.T) {
	re, du := parts(godual.Ln(godual.Param(godual.Float64(1))))
	assert.Equal(t, 0.0, re)
	assert.Equal(t, 1.0, du)
}

func TestTan_AtOrigin(t *testing.T) {
	re, du := parts(godual.Tan(godual.Param(godual.Float64(0))))
	assert.Equal(t, 0.0, re)
	assert.Equal(t, 1.0, du)
}

func TestConstant_ThroughFunctions_StaysConstant(t *testing.T) {
	c := godual.Constant(godual.Float64(0.7))
	for _, f := range []func(fdual) fdual{godual.Sqrt, godual.Exp, godual.Ln, godual.Sin, godual.Tan} {
		assert.Equal(t, 0.0, f(c).Dual().Float64())
	}
}

// ============================================================
// Domain errors surface as IEEE values
// ============================================================

func TestLn_NonPositive(t *testing.T) {
	re, du := parts(godual.Ln(godual.Param(godual.Float64(-1))))
	assert.True(t, math.IsNaN(re))
	assert.Equal(t, -1.0, du)

	re, du = parts(godual.Ln(godual.Param(godual.Float64(0))))
	assert.True(t, math.IsInf(re, -1))
	assert.True(t, math.IsInf(du, 1))
}

func TestSqrt_Negative(t *testing.T) {
	re, du := parts(godual.Sqrt(godual.Param(godual.Float64(-4))))
	assert.True(t, math.IsNaN(re))
	assert.True(t, math.IsNaN(du))
}

// ============================================================
// Chain rule against finite differences
// ============================================================

func TestBuiltins_MatchFiniteDifference(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central}
	tests := []struct {
		name string
		f    func(fdual) fdual
		x    float64
	}{
		{"sqrt", godual.Sqrt, 2.3},
		{"exp", godual.Exp, 0.4},
		{"exp2", godual.Exp2, 1.7},
		{"ln", godual.Ln, 1.7},
		{"log2", godual.Log2, 3.1},
		{"log10", godual.Log10, 5.5},
		{"sin", godual.Sin, 0.9},
		{"cos", godual.Cos, 0.9},
		{"tan", godual.Tan, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := func(x float64) float64 { return tt.f(godual.Constant(godual.Float64(x))).Real().Float64() }
			want := fd.Derivative(plain, tt.x, settings)
			got := tt.f(godual.Param(godual.Float64(tt.x))).Dual().Float64()
			assert.InEpsilon(t, want, got, 1e-6)
		})
	}
}

func TestChainRule_Composition(t *testing.T) {
	// d/dx sin(x^2) = 2x cos(x^2)
	x := godual.Param(godual.Float64(1.3))
	re, du := parts(godual.Sin(x.Mul(x)))
	assert.InDelta(t, math.Sin(1.69), re, tol)
	assert.InDelta(t, 2*1.3*math.Cos(1.69), du, 1e-12)

	// d/dx exp(ln(x)) = 1
	_, du = parts(godual.Exp(godual.Ln(godual.Param(godual.Float64(5)))))
	assert.InDelta(t, 1.0, du, 1e-12)
}

func TestChainRule_ScaledTangent(t *testing.T) {
	// tangent 3 seeds d/dt of f(3t)
	d := fnew(0, 3)
	_, du := parts(godual.Cos(d))
	assert.Equal(t, 0.0, math.Abs(du))
	_, du = parts(godual.Sin(d))
	assert.Equal(t, 3.0, du)
}

// ============================================================
// Catalog
// ============================================================

func TestCatalog_BuiltinNames(t *testing.T) {
	want := []string{"cos", "exp", "exp2", "ln", "log10", "log2", "sin", "sqrt", "tan"}
	assert.Equal(t, want, godual.NewCatalog().Names())
	assert.Subset(t, godual.Names(), want)
}

func TestCatalog_ApplyMatchesFunctions(t *testing.T) {
	c := godual.NewCatalog()
	x := godual.Param(godual.Float64(0.6))
	got, err := c.Apply("tan", x)
	require.NoError(t, err)
	assert.True(t, got.Equal(godual.Tan(x)))

	got, err = godual.Apply("sqrt", x)
	require.NoError(t, err)
	assert.True(t, got.Equal(godual.Sqrt(x)))
}

func TestCatalog_UnknownFunction(t *testing.T) {
	_, err := godual.NewCatalog().Apply("asin", godual.Param(godual.Float64(0)))
	assert.ErrorIs(t, err, godual.ErrUnknownFunction)
	assert.Contains(t, err.Error(), `"asin"`)
}

func TestCatalog_RegisterExtension(t *testing.T) {
	atan, err := godual.NewFunc("atan", math.Atan, func(x, _ float64) float64 { return 1 / (1 + x*x) })
	require.NoError(t, err)

	c := godual.NewCatalog()
	require.NoError(t, c.Register(atan))

	f, ok := c.Lookup("atan")
	require.True(t, ok)
	assert.Equal(t, "atan", f.Name())

	re, du := parts(f.Apply(godual.Param(godual.Float64(1))))
	assert.InDelta(t, math.Pi/4, re, tol)
	assert.InDelta(t, 0.5, du, tol)

	_, ok = godual.NewCatalog().Lookup("atan")
	assert.False(t, ok, "catalogs are independent")
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	sqrt, err := godual.NewFunc("sqrt", math.Sqrt, func(_, y float64) float64 { return 0.5 / y })
	require.NoError(t, err)
	assert.ErrorIs(t, godual.NewCatalog().Register(sqrt), godual.ErrDuplicateFunction)
}

func TestCatalog_RegisterInvalid(t *testing.T) {
	c := godual.NewCatalog()
	assert.ErrorIs(t, c.Register(nil), godual.ErrInvalidFunction)
	assert.ErrorIs(t, c.Register(&godual.Func{}), godual.ErrInvalidFunction)
	_, err := c.Apply("", godual.Param(godual.Float64(1)))
	assert.ErrorIs(t, err, godual.ErrUnknownFunction)

	_, err = godual.NewFunc("", math.Sinh, func(x, _ float64) float64 { return math.Cosh(x) })
	assert.ErrorIs(t, err, godual.ErrInvalidFunction)
	_, err = godual.NewFunc("sinh", math.Sinh, nil)
	assert.ErrorIs(t, err, godual.ErrInvalidFunction)
}

func TestCatalog_ZeroValue(t *testing.T) {
	var c godual.Catalog
	assert.Empty(t, c.Names())
	_, err := c.Apply("sqrt", godual.Param(godual.Float64(4)))
	assert.ErrorIs(t, err, godual.ErrUnknownFunction)

	sinh, err := godual.NewFunc("sinh", math.Sinh, func(x, _ float64) float64 { return math.Cosh(x) })
	require.NoError(t, err)
	require.NoError(t, c.Register(sinh))
	assert.Equal(t, []string{"sinh"}, c.Names())

	re, du := parts(mustApply(t, &c, "sinh", godual.Param(godual.Float64(0))))
	assert.Equal(t, 0.0, re)
	assert.Equal(t, 1.0, du)
}

func mustApply(t *testing.T, c *godual.Catalog, name string, d fdual) fdual {
	t.Helper()
	y, err := c.Apply(name, d)
	require.NoError(t, err)
	return y
}

func TestCatalog_ConcurrentUse(t *testing.T) {
	c := godual.NewCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := godual.NewFunc(fmt.Sprintf("scale%d", i),
				func(x float64) float64 { return float64(i) * x },
				func(_, _ float64) float64 { return float64(i) })
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, c.Register(f))
			_, err = c.Apply("sin", godual.Param(godual.Float64(float64(i))))
			assert.NoError(t, err)
			_ = c.Names()
		}(i)
	}
	wg.Wait()
	assert.Len(t, c.Names(), 9+16)
}

func TestFunc_Eval(t *testing.T) {
	f, ok := godual.Lookup("exp")
	require.True(t, ok)
	y, dy := f.Eval(1)
	assert.InDelta(t, math.E, y, tol)
	assert.Equal(t, y, dy)
}
