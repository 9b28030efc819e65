package solve_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/solve"
)

func TestDefaultFuncs(t *testing.T) {
	fns := solve.DefaultFuncs[float64]()
	for _, name := range []string{"sin", "cos", "tan", "abs", "exp", "log", "sqrt"} {
		if fns[name] == nil {
			t.Errorf("no default function %s", name)
		}
	}
	// Modifying one table must not affect new ones.
	delete(fns, "sin")
	if solve.DefaultFuncs[float64]()["sin"] == nil {
		t.Error("default functions share a map")
	}
}

func TestFuncsReference(t *testing.T) {
	const prec = 256
	cases := []struct {
		name string
		f    func(z, x *big.Float) *big.Float
		args []float64
	}{
		{"exp", bigfloat.Exp, []float64{-3.5, -1, 0.25, 1, 1.7, 10}},
		{"log", bigfloat.Log, []float64{0.1, 0.5, 2, 3.3, 1000}},
	}
	fns := solve.DefaultFuncs[float64]()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, x := range c.args {
				got := fns[c.name](x)
				r := c.f(new(big.Float).SetPrec(prec), new(big.Float).SetPrec(prec).SetFloat64(x))
				want, _ := r.Float64()
				if !near(got, want, 1e-15) {
					t.Errorf("%s(%g): want %.17g, got %.17g", c.name, x, want, got)
				}
			}
		})
	}
}

func TestMonadic32(t *testing.T) {
	f := solve.Monadic[float32](math.Sqrt)
	want := float32(math.Sqrt(2))
	if r := f(2); r != want {
		t.Errorf("want %g, got %g", want, r)
	}
	fns := solve.DefaultFuncs[float32]()
	if r := fns["abs"](-1.5); r != 1.5 {
		t.Errorf("want 1.5, got %g", r)
	}
}
