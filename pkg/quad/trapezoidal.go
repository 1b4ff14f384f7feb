package quad

import "github.com/wildfunctions/mathplot/pkg/expr"

// Trapezoidal averages the endpoints of floor((b-a)/h) sub-intervals.
type Trapezoidal struct{}

func init() {
	Register("trapezoidal", func() Rule { return Trapezoidal{} })
}

func (Trapezoidal) Name() string { return "trapezoidal" }

func (Trapezoidal) Integrate(node expr.Node, a, b, h float64) float64 {
	n := int((b - a) / h)
	if n <= 0 {
		return 0
	}

	sum := 0.0
	f0 := expr.Eval(node, a)
	for i := 0; i < n; i++ {
		x1 := a + float64(i+1)*h
		f1 := expr.Eval(node, x1)
		sum += (f0 + f1) * 0.5 * h
		f0 = f1
	}
	return sum
}
