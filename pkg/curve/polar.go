package curve

import (
	"math"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Polar sweeps the angle from start to end inclusive in steps of step,
// interprets f(theta) as a radius, and yields the Cartesian projection
// (r*cos(theta), r*sin(theta)).
type Polar struct {
	node    expr.Node
	start   float64
	end     float64
	step    float64
	current float64
}

// NewPolar returns a Polar sequence over the given tree, with the cursor
// at start.
func NewPolar(node expr.Node, start, end, step float64) *Polar {
	p := &Polar{node: node, start: start, end: end, step: step}
	p.Reset()
	return p
}

func (p *Polar) HasNext() bool {
	return p.current <= p.end+endTolerance
}

func (p *Polar) HasBreak() bool {
	return false
}

func (p *Polar) Reset() {
	p.current = p.start
}

func (p *Polar) Next() (Point, error) {
	if !p.HasNext() {
		return Point{}, ErrExhausted
	}
	theta := p.current
	p.current += p.step
	r := expr.Eval(p.node, theta)
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}, nil
}
