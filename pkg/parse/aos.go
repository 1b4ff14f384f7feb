// Package parse turns the two surface notations into expression trees.
//
// AOS input is fully parenthesized: an expression is "x", a numeric
// literal, name(arg), or (left op right). RPN input is a flat sequence of
// whitespace-delimited tokens. Both front ends are case-insensitive.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Parts is the structural triple for one AOS level: the operator, function
// name, or atom in Main, and the raw operand substrings in Left/Right
// (empty when absent).
type Parts struct {
	Main  string
	Left  string
	Right string
}

// SplitAOS reduces one AOS level to its Parts triple without interpreting
// the operands. Operand substrings are split off verbatim; the builder
// recurses into them.
func SplitAOS(input string) (Parts, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Parts{}, errors.New("empty expression")
	}

	if s[0] == '(' {
		if s[len(s)-1] != ')' {
			return Parts{}, fmt.Errorf("unbalanced parentheses: %q", input)
		}
		inner := s[1 : len(s)-1]
		depth := 0
		for i, r := range inner {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth < 0 {
					return Parts{}, fmt.Errorf("unbalanced parentheses: %q", input)
				}
			case '+', '-', '*', '/', '^':
				if depth != 0 {
					continue
				}
				// A sign with nothing before it belongs to a literal.
				if (r == '+' || r == '-') && strings.TrimSpace(inner[:i]) == "" {
					continue
				}
				return Parts{Main: string(r), Left: inner[:i], Right: inner[i+1:]}, nil
			}
		}
		return Parts{}, fmt.Errorf("no operator found: %q", input)
	}

	if open := strings.IndexByte(s, '('); open > 0 && s[len(s)-1] == ')' && isAlphabetic(s[:open]) {
		return Parts{Main: s[:open], Left: s[open+1 : len(s)-1]}, nil
	}

	return Parts{Main: s}, nil
}

// AOS builds an expression tree from a fully-parenthesized input string.
func AOS(input string) (expr.Node, error) {
	parts, err := SplitAOS(input)
	if err != nil {
		return nil, err
	}
	main := strings.TrimSpace(parts.Main)

	if strings.EqualFold(main, "x") {
		return &expr.Var{}, nil
	}

	if parts.Right == "" && parts.Left != "" && isAlphabetic(main) {
		name, ok := expr.ParseFuncName(strings.ToLower(main))
		if !ok {
			return nil, fmt.Errorf("unknown function: %s", main)
		}
		arg, err := AOS(parts.Left)
		if err != nil {
			return nil, err
		}
		return &expr.Func{Name: name, Arg: arg}, nil
	}

	if op, ok := expr.ParseBinaryOp(main); ok {
		left, err := AOS(parts.Left)
		if err != nil {
			return nil, err
		}
		right, err := AOS(parts.Right)
		if err != nil {
			return nil, err
		}
		return &expr.BinOp{Op: op, Left: left, Right: right}, nil
	}

	v, err := strconv.ParseFloat(main, 64)
	if err != nil {
		return nil, fmt.Errorf("unknown token: %q", main)
	}
	return &expr.Const{Value: v}, nil
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
