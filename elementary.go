package godual

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// ============================================================
// Func — named chain-rule implementation
// ============================================================

// Func is a unary elementary function on Float64 together with its
// closed-form derivative. deriv receives the argument x and the already
// computed value y = f(x) so formulas such as exp' = exp can reuse it.
type Func struct {
	name  string
	value func(x float64) float64
	deriv func(x, y float64) float64
}

// NewFunc builds a Func. Name must be non-empty and both functions non-nil.
func NewFunc(name string, value func(x float64) float64, deriv func(x, y float64) float64) (*Func, error) {
	f := &Func{name: name, value: value, deriv: deriv}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Func) validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil", ErrInvalidFunction)
	}
	if f.name == "" || f.value == nil || f.deriv == nil {
		return fmt.Errorf("%w: %q", ErrInvalidFunction, f.name)
	}
	return nil
}

func mustFunc(name string, value func(x float64) float64, deriv func(x, y float64) float64) *Func {
	f, err := NewFunc(name, value, deriv)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Func) Name() string { return f.name }

// Eval returns f(x) and f'(x).
func (f *Func) Eval(x float64) (y, dy float64) {
	y = f.value(x)
	return y, f.deriv(x, y)
}

// Apply maps (x, x') to (f(x), f'(x)·x').
func (f *Func) Apply(d DualNum[Float64]) DualNum[Float64] {
	y, dy := f.Eval(float64(d.re))
	return DualNum[Float64]{re: Float64(y), du: Float64(dy) * d.du}
}

// ============================================================
// Builtin rules
// ============================================================

var (
	sqrtFunc  = mustFunc("sqrt", math.Sqrt, func(_, y float64) float64 { return 0.5 / y })
	expFunc   = mustFunc("exp", math.Exp, func(_, y float64) float64 { return y })
	exp2Func  = mustFunc("exp2", math.Exp2, func(_, y float64) float64 { return math.Ln2 * y })
	lnFunc    = mustFunc("ln", math.Log, func(x, _ float64) float64 { return 1 / x })
	log2Func  = mustFunc("log2", math.Log2, func(x, _ float64) float64 { return 1 / (math.Ln2 * x) })
	log10Func = mustFunc("log10", math.Log10, func(x, _ float64) float64 { return 1 / (math.Ln10 * x) })
	sinFunc   = mustFunc("sin", math.Sin, func(x, _ float64) float64 { return math.Cos(x) })
	cosFunc   = mustFunc("cos", math.Cos, func(x, _ float64) float64 { return -math.Sin(x) })
	tanFunc   = mustFunc("tan", math.Tan, dtan)

	builtins = []*Func{sqrtFunc, expFunc, exp2Func, lnFunc, log2Func, log10Func, sinFunc, cosFunc, tanFunc}
)

// dtan is sec²(x).
func dtan(x, _ float64) float64 {
	c := math.Cos(x)
	return 1 / (c * c)
}

func Sqrt(d DualNum[Float64]) DualNum[Float64]  { return sqrtFunc.Apply(d) }
func Exp(d DualNum[Float64]) DualNum[Float64]   { return expFunc.Apply(d) }
func Exp2(d DualNum[Float64]) DualNum[Float64]  { return exp2Func.Apply(d) }
func Ln(d DualNum[Float64]) DualNum[Float64]    { return lnFunc.Apply(d) }
func Log2(d DualNum[Float64]) DualNum[Float64]  { return log2Func.Apply(d) }
func Log10(d DualNum[Float64]) DualNum[Float64] { return log10Func.Apply(d) }
func Sin(d DualNum[Float64]) DualNum[Float64]   { return sinFunc.Apply(d) }
func Cos(d DualNum[Float64]) DualNum[Float64]   { return cosFunc.Apply(d) }
func Tan(d DualNum[Float64]) DualNum[Float64]   { return tanFunc.Apply(d) }

// ============================================================
// Catalog — open registry keyed by name
// ============================================================

// Catalog maps function names to rules. It is safe for concurrent use.
// The zero value is an empty catalog; NewCatalog starts with the builtins.
type Catalog struct {
	mu    sync.RWMutex
	funcs map[string]*Func
}

// NewCatalog returns a catalog holding the builtin rules: sqrt, exp, exp2,
// ln, log2, log10, sin, cos and tan.
func NewCatalog() *Catalog {
	c := &Catalog{funcs: make(map[string]*Func, len(builtins))}
	for _, f := range builtins {
		c.funcs[f.name] = f
	}
	return c
}

// Register adds f. Names are unique; builtins cannot be replaced. A Func
// not built by NewFunc is rejected with ErrInvalidFunction.
func (c *Catalog) Register(f *Func) error {
	if err := f.validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.funcs == nil {
		c.funcs = make(map[string]*Func)
	}
	if _, ok := c.funcs[f.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFunction, f.name)
	}
	c.funcs[f.name] = f
	return nil
}

func (c *Catalog) Lookup(name string) (*Func, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.funcs[name]
	return f, ok
}

// Apply applies the rule registered under name to d.
func (c *Catalog) Apply(name string, d DualNum[Float64]) (DualNum[Float64], error) {
	f, ok := c.Lookup(name)
	if !ok {
		return DualNum[Float64]{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return f.Apply(d), nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.funcs))
	for name := range c.funcs {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

var defaultCatalog = NewCatalog()

// Register adds f to the package-level catalog. The catalog is shared by
// the whole process, so f becomes visible to every package-level Apply,
// Lookup and Names call. Use NewCatalog for an isolated set of rules.
func Register(f *Func) error { return defaultCatalog.Register(f) }

func Lookup(name string) (*Func, bool) { return defaultCatalog.Lookup(name) }

// Apply applies the package-level rule registered under name.
func Apply(name string, d DualNum[Float64]) (DualNum[Float64], error) {
	return defaultCatalog.Apply(name, d)
}

func Names() []string { return defaultCatalog.Names() }
