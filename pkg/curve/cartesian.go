package curve

import "github.com/wildfunctions/mathplot/pkg/expr"

// Cartesian sweeps t from start to end inclusive in steps of step,
// yielding (t, f(t)).
type Cartesian struct {
	node    expr.Node
	start   float64
	end     float64
	step    float64
	current float64
}

// NewCartesian returns a Cartesian sequence over the given tree, with the
// cursor at start.
func NewCartesian(node expr.Node, start, end, step float64) *Cartesian {
	c := &Cartesian{node: node, start: start, end: end, step: step}
	c.Reset()
	return c
}

func (c *Cartesian) HasNext() bool {
	return c.current <= c.end+endTolerance
}

func (c *Cartesian) HasBreak() bool {
	return false
}

func (c *Cartesian) Reset() {
	c.current = c.start
}

func (c *Cartesian) Next() (Point, error) {
	if !c.HasNext() {
		return Point{}, ErrExhausted
	}
	t := c.current
	c.current += c.step
	return Point{X: t, Y: expr.Eval(c.node, t)}, nil
}
