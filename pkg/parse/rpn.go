package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// ErrInvalidRPN reports a stack discipline violation: an operator or
// function applied with too few operands, or a final stack size other
// than one.
var ErrInvalidRPN = errors.New("invalid RPN expression")

// Tokens splits an RPN input string into its ordered token sequence.
func Tokens(input string) []string {
	return strings.Fields(input)
}

// RPN builds an expression tree from a postfix token stream, left to
// right over an operand stack. The most recently pushed operand becomes
// the right operand of a binary operator.
func RPN(input string) (expr.Node, error) {
	var stack []expr.Node

	for _, tok := range Tokens(input) {
		tok = strings.ToLower(tok)

		if tok == "x" {
			stack = append(stack, &expr.Var{})
			continue
		}
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			stack = append(stack, &expr.Const{Value: v})
			continue
		}
		if op, ok := expr.ParseBinaryOp(tok); ok {
			if len(stack) < 2 {
				return nil, ErrInvalidRPN
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &expr.BinOp{Op: op, Left: left, Right: right})
			continue
		}
		if name, ok := expr.ParseFuncName(tok); ok {
			if len(stack) < 1 {
				return nil, ErrInvalidRPN
			}
			stack[len(stack)-1] = &expr.Func{Name: name, Arg: stack[len(stack)-1]}
			continue
		}
		return nil, fmt.Errorf("illegal token: %q", tok)
	}

	if len(stack) != 1 {
		return nil, ErrInvalidRPN
	}
	return stack[0], nil
}
