package expr

// Diff returns the symbolic derivative of a tree with respect to x.
// The result is deliberately unreduced; callers run Simplify as a
// separate pass.
func Diff(n Node) Node {
	switch e := n.(type) {
	case *Var:
		return &Const{Value: 1}

	case *Const:
		return &Const{Value: 0}

	case *BinOp:
		u, v := e.Left, e.Right
		du, dv := Diff(u), Diff(v)
		switch e.Op {
		case OpAdd:
			return &BinOp{Op: OpAdd, Left: du, Right: dv}
		case OpSub:
			return &BinOp{Op: OpSub, Left: du, Right: dv}
		case OpMul:
			// (uv)' = u'v + uv'
			return &BinOp{Op: OpAdd,
				Left:  &BinOp{Op: OpMul, Left: du, Right: v},
				Right: &BinOp{Op: OpMul, Left: u, Right: dv},
			}
		case OpDiv:
			// (u/v)' = (u'v - uv') / v^2
			return &BinOp{Op: OpDiv,
				Left: &BinOp{Op: OpSub,
					Left:  &BinOp{Op: OpMul, Left: du, Right: v},
					Right: &BinOp{Op: OpMul, Left: u, Right: dv},
				},
				Right: &BinOp{Op: OpPow, Left: v, Right: &Const{Value: 2}},
			}
		case OpPow:
			return diffPow(u, v, du, dv)
		}

	case *Func:
		da := Diff(e.Arg)
		switch e.Name {
		case FuncSin:
			return &BinOp{Op: OpMul,
				Left:  &Func{Name: FuncCos, Arg: e.Arg},
				Right: da,
			}
		case FuncCos:
			return &BinOp{Op: OpMul,
				Left: &Const{Value: -1},
				Right: &BinOp{Op: OpMul,
					Left:  &Func{Name: FuncSin, Arg: e.Arg},
					Right: da,
				},
			}
		case FuncExp:
			return &BinOp{Op: OpMul,
				Left:  &Func{Name: FuncExp, Arg: e.Arg},
				Right: da,
			}
		case FuncLog:
			return &BinOp{Op: OpMul,
				Left:  &BinOp{Op: OpDiv, Left: &Const{Value: 1}, Right: e.Arg},
				Right: da,
			}
		}
	}
	return &Const{Value: 0}
}

// diffPow handles u^v. A constant exponent uses the power rule; otherwise
// logarithmic differentiation: u^v * (v'*log(u) + v*u'/u). The log form
// assumes u > 0 over the domain of interest; no domain check is made.
func diffPow(u, v, du, dv Node) Node {
	if c, ok := v.(*Const); ok {
		return &BinOp{Op: OpMul,
			Left: &BinOp{Op: OpMul,
				Left:  &Const{Value: c.Value},
				Right: &BinOp{Op: OpPow, Left: u, Right: &Const{Value: c.Value - 1}},
			},
			Right: du,
		}
	}

	return &BinOp{Op: OpMul,
		Left: &BinOp{Op: OpPow, Left: u, Right: v},
		Right: &BinOp{Op: OpAdd,
			Left: &BinOp{Op: OpMul,
				Left:  dv,
				Right: &Func{Name: FuncLog, Arg: u},
			},
			Right: &BinOp{Op: OpMul,
				Left:  v,
				Right: &BinOp{Op: OpDiv, Left: du, Right: u},
			},
		},
	}
}
