// Package expr implements the expression tree for single-variable
// functions: construction, numeric evaluation, symbolic differentiation,
// algebraic simplification, and infix/postfix rendering.
//
// Trees are immutable. Every transformation returns a freshly built tree
// and never touches its input.
package expr

// Node is the sealed interface over the four expression variants.
// Operations on trees (Eval, Diff, Simplify, Infix, Postfix) are package
// functions that type-switch over the full variant set.
type Node interface {
	node()
}

// BinaryOp identifies a binary arithmetic operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// FuncName identifies a unary transcendental function.
type FuncName int

const (
	FuncSin FuncName = iota
	FuncCos
	FuncExp
	FuncLog
)

// Var is the free variable x.
type Var struct{}

// Const is a numeric literal.
type Const struct {
	Value float64
}

// BinOp applies a binary operation to two child expressions.
type BinOp struct {
	Op          BinaryOp
	Left, Right Node
}

// Func applies a transcendental function to a child expression.
type Func struct {
	Name FuncName
	Arg  Node
}

func (*Var) node()   {}
func (*Const) node() {}
func (*BinOp) node() {}
func (*Func) node()  {}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
}

var funcNames = map[FuncName]string{
	FuncSin: "sin",
	FuncCos: "cos",
	FuncExp: "exp",
	FuncLog: "log",
}

// ParseBinaryOp maps an operator token to its BinaryOp. The closed set is
// enforced here: anything outside {+,-,*,/,^} reports false, and the
// builders reject it before a tree is ever constructed.
func ParseBinaryOp(tok string) (BinaryOp, bool) {
	for op, sym := range binaryOpSymbols {
		if tok == sym {
			return op, true
		}
	}
	return 0, false
}

// ParseFuncName maps a lowercased function token to its FuncName.
// Only sin, cos, exp and log are admitted.
func ParseFuncName(tok string) (FuncName, bool) {
	for name, s := range funcNames {
		if tok == s {
			return name, true
		}
	}
	return 0, false
}
