package quad

import (
	"math"
	"testing"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "rectangular" || names[1] != "trapezoidal" {
		t.Fatalf("Names() = %v", names)
	}

	for _, name := range names {
		r, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		if r.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, r.Name())
		}
	}

	if _, err := Get("simpson"); err == nil {
		t.Error("Get(simpson) should fail")
	}
}

func TestTrapezoidalParabola(t *testing.T) {
	// Integral of x^2 over [-5, 5] is 250/3 ~ 83.33.
	node := &expr.BinOp{Op: expr.OpPow, Left: &expr.Var{}, Right: &expr.Const{Value: 2}}

	got := Trapezoidal{}.Integrate(node, -5, 5, 0.01)
	if math.Abs(got-83.33) > 3 {
		t.Errorf("trapezoidal area of x^2 = %v, want ~83.33", got)
	}
}

func TestTrapezoidalOddFunction(t *testing.T) {
	// x over a symmetric interval cancels.
	got := Trapezoidal{}.Integrate(&expr.Var{}, -5, 5, 0.01)
	if math.Abs(got) > 0.1 {
		t.Errorf("trapezoidal area of x = %v, want ~0", got)
	}
}

func TestRulesDivergeOnCurvature(t *testing.T) {
	// exp is convex, so the left-endpoint rule undershoots while the
	// trapezoidal rule stays close to the true value.
	node := &expr.Func{Name: expr.FuncExp, Arg: &expr.Var{}}

	rect := Rectangular{}.Integrate(node, -5, 5, 0.01)
	trap := Trapezoidal{}.Integrate(node, -5, 5, 0.01)
	if math.Abs(rect-trap) < 0.1 {
		t.Errorf("rectangular %v and trapezoidal %v should differ for exp(x)", rect, trap)
	}
}

func TestSingularIntegrand(t *testing.T) {
	// 1/x over [-5, 5] straddles the pole at 0.
	node := &expr.BinOp{Op: expr.OpDiv, Left: &expr.Const{Value: 1}, Right: &expr.Var{}}

	got := Trapezoidal{}.Integrate(node, -5, 5, 0.01)
	if !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("trapezoidal area of 1/x = %v, want NaN or Inf", got)
	}
}

func TestDegenerateInterval(t *testing.T) {
	if got := (Trapezoidal{}).Integrate(&expr.Var{}, 2, 2, 0.1); got != 0 {
		t.Errorf("zero-width trapezoidal area = %v, want 0", got)
	}
	if got := (Trapezoidal{}).Integrate(&expr.Var{}, 5, -5, 0.1); got != 0 {
		t.Errorf("inverted-interval trapezoidal area = %v, want 0", got)
	}
	if got := (Rectangular{}).Integrate(&expr.Var{}, 2, 2, 0.1); got != 0 {
		t.Errorf("zero-width rectangular area = %v, want 0", got)
	}
}
