package expr

// Simplify applies one post-order reduction pass: children first, then a
// fixed rule table at the current node. The freshly produced node is not
// re-simplified, so a reduction whose output is itself reducible one level
// up survives the pass. This single-pass behavior is intentional and
// observable in rendered output; do not replace it with a fixed-point loop.
func Simplify(n Node) Node {
	switch e := n.(type) {
	case *Var, *Const:
		return n

	case *BinOp:
		ls := Simplify(e.Left)
		rs := Simplify(e.Right)

		lc, lok := ls.(*Const)
		rc, rok := rs.(*Const)

		// Constant fold: children ignore x, any sample point works.
		if lok && rok {
			return &Const{Value: Eval(&BinOp{Op: e.Op, Left: ls, Right: rs}, 0)}
		}

		switch e.Op {
		case OpAdd:
			if lok && lc.Value == 0 {
				return rs
			}
			if rok && rc.Value == 0 {
				return ls
			}

		case OpSub:
			if rok && rc.Value == 0 {
				return ls
			}

		case OpMul:
			if lok {
				if lc.Value == 0 {
					return &Const{Value: 0}
				}
				if lc.Value == 1 {
					return rs
				}
			}
			if rok {
				if rc.Value == 0 {
					return &Const{Value: 0}
				}
				if rc.Value == 1 {
					return ls
				}
			}

		case OpDiv:
			if rok && rc.Value == 1 {
				return ls
			}

		case OpPow:
			if rok {
				if rc.Value == 1 {
					return ls
				}
				if rc.Value == 0 {
					return &Const{Value: 1}
				}
			}
		}

		return &BinOp{Op: e.Op, Left: ls, Right: rs}

	case *Func:
		arg := Simplify(e.Arg)
		if _, ok := arg.(*Const); ok {
			return &Const{Value: Eval(&Func{Name: e.Name, Arg: arg}, 0)}
		}
		return &Func{Name: e.Name, Arg: arg}

	default:
		return n
	}
}
