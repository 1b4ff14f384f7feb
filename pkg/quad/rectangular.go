package quad

import "github.com/wildfunctions/mathplot/pkg/expr"

// Rectangular is the left-endpoint rectangle rule. The cursor accumulates
// in floating point rather than counting sub-intervals, so the iteration
// count near the right boundary may vary by one.
type Rectangular struct{}

func init() {
	Register("rectangular", func() Rule { return Rectangular{} })
}

func (Rectangular) Name() string { return "rectangular" }

func (Rectangular) Integrate(n expr.Node, a, b, h float64) float64 {
	sum := 0.0
	for x := a; x < b; x += h {
		sum += expr.Eval(n, x) * h
	}
	return sum
}
