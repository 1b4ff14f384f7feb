package expr

import "math"

// Eval computes the numeric value of a tree at x. It is total: domain
// errors are not intercepted and surface as NaN or ±Inf per IEEE-754
// (division by zero, log of a non-positive argument, and so on).
func Eval(n Node, x float64) float64 {
	switch e := n.(type) {
	case *Var:
		return x

	case *Const:
		return e.Value

	case *BinOp:
		a := Eval(e.Left, x)
		b := Eval(e.Right, x)
		switch e.Op {
		case OpAdd:
			return a + b
		case OpSub:
			return a - b
		case OpMul:
			return a * b
		case OpDiv:
			return a / b
		case OpPow:
			return math.Pow(a, b)
		}

	case *Func:
		v := Eval(e.Arg, x)
		switch e.Name {
		case FuncSin:
			return math.Sin(v)
		case FuncCos:
			return math.Cos(v)
		case FuncExp:
			return math.Exp(v)
		case FuncLog:
			return math.Log(v)
		}
	}
	return math.NaN()
}
