package expr

import (
	"math"
	"strconv"
)

// Infix renders a tree in fully-parenthesized operator notation.
func Infix(n Node) string {
	switch e := n.(type) {
	case *Var:
		return "x"
	case *Const:
		return formatNumber(e.Value)
	case *BinOp:
		return "(" + Infix(e.Left) + " " + binaryOpSymbols[e.Op] + " " + Infix(e.Right) + ")"
	case *Func:
		return funcNames[e.Name] + "(" + Infix(e.Arg) + ")"
	default:
		return ""
	}
}

// Postfix renders a tree in reverse-Polish notation.
func Postfix(n Node) string {
	switch e := n.(type) {
	case *Var:
		return "x"
	case *Const:
		return formatNumber(e.Value)
	case *BinOp:
		return Postfix(e.Left) + " " + Postfix(e.Right) + " " + binaryOpSymbols[e.Op]
	case *Func:
		return Postfix(e.Arg) + " " + funcNames[e.Name]
	default:
		return ""
	}
}

// formatNumber renders a literal, dropping the fractional part when the
// value sits within 1e-10 of its nearest integer.
func formatNumber(v float64) string {
	rounded := math.Round(v)
	if math.Abs(v-rounded) < 1e-10 {
		return strconv.FormatFloat(rounded, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
