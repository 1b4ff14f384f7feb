// Package engine holds the current function and its derivative and
// serves every read operation over that pair: rendering, sampling, and
// definite integration.
package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/wildfunctions/mathplot/pkg/curve"
	"github.com/wildfunctions/mathplot/pkg/expr"
	"github.com/wildfunctions/mathplot/pkg/parse"
	"github.com/wildfunctions/mathplot/pkg/quad"
)

// Format selects a surface notation.
type Format int

const (
	FormatAOS Format = iota
	FormatRPN
)

// ParseFormat maps a notation name to its Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "aos":
		return FormatAOS, true
	case "rpn":
		return FormatRPN, true
	}
	return 0, false
}

func (f Format) String() string {
	if f == FormatRPN {
		return "rpn"
	}
	return "aos"
}

// Engine is a single-owner session holding the current function tree and
// its simplified derivative. It is not safe for concurrent use; callers
// needing shared access must serialize externally.
type Engine struct {
	cfg Config
	log logrus.FieldLogger

	fn    expr.Node
	deriv expr.Node
}

// New returns an engine with no current function.
func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		log: logrus.WithField("component", "engine"),
	}
}

// Reset clears the current function and derivative.
func (e *Engine) Reset() {
	e.fn = nil
	e.deriv = nil
}

// SetExpression parses input in the given notation and stores the
// simplified tree together with its simplified derivative. On any
// construction failure the engine is cleared entirely; the failure is
// absorbed here and never surfaces to the caller.
func (e *Engine) SetExpression(input string, format Format) {
	var (
		node expr.Node
		err  error
	)
	if format == FormatRPN {
		node, err = parse.RPN(input)
	} else {
		node, err = parse.AOS(input)
	}
	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"input":  input,
			"format": format.String(),
		}).Debug("expression rejected")
		e.Reset()
		return
	}

	fn := expr.Simplify(node)
	e.fn = fn
	e.deriv = expr.Simplify(expr.Diff(fn))
}

// HasFunction reports whether a current function is set.
func (e *Engine) HasFunction() bool { return e.fn != nil }

// HasDerivative reports whether a current derivative is set.
func (e *Engine) HasDerivative() bool { return e.deriv != nil }

// Print renders the current pair in the requested notation: two entries,
// function then derivative, or none when no function is set.
func (e *Engine) Print(format Format) []string {
	if e.fn == nil {
		return nil
	}

	render := expr.Infix
	if format == FormatRPN {
		render = expr.Postfix
	}

	out := []string{render(e.fn)}
	if e.deriv != nil {
		out = append(out, render(e.deriv))
	}
	return out
}

// Area integrates the current function over the configured window.
// It returns NaN when no function is set.
func (e *Engine) Area(rule quad.Rule) float64 {
	return e.AreaOver(rule, e.cfg.IntegStart, e.cfg.IntegEnd, e.cfg.IntegStep)
}

// AreaOver integrates the current function (never the derivative) over
// [a, b] with step h. It returns NaN when no function is set.
func (e *Engine) AreaOver(rule quad.Rule, a, b, h float64) float64 {
	if e.fn == nil {
		return math.NaN()
	}
	return rule.Integrate(e.fn, a, b, h)
}

// Cartesian returns a point sequence sampling the function (or its
// derivative) over [start, end] with the given step. With no current
// function the empty sequence is returned.
func (e *Engine) Cartesian(derivative bool, start, end, step float64) curve.Iterator {
	node := e.pick(derivative)
	if node == nil {
		return curve.Empty{}
	}
	return curve.NewCartesian(node, start, end, step)
}

// Polar is the polar counterpart of Cartesian, sweeping the angle.
func (e *Engine) Polar(derivative bool, start, end, step float64) curve.Iterator {
	node := e.pick(derivative)
	if node == nil {
		return curve.Empty{}
	}
	return curve.NewPolar(node, start, end, step)
}

// Config returns the engine's window defaults.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) pick(derivative bool) expr.Node {
	if e.fn == nil {
		return nil
	}
	if derivative {
		return e.deriv
	}
	return e.fn
}
