// Package curve provides lazy, restartable point sequences for sampling
// expression trees along Cartesian and polar sweeps.
package curve

import "errors"

// ErrExhausted is returned by Next once the cursor has passed the end of
// the sequence.
var ErrExhausted = errors.New("exhausted sequence")

// endTolerance absorbs floating accumulation drift so the nominal upper
// bound is included in the sweep.
const endTolerance = 1e-9

// Point is a 2-D sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Iterator is a finite, restartable point sequence. HasNext reflects the
// remaining cursor range before each draw; Reset rewinds the cursor so a
// replay yields the identical sequence. HasBreak reports a discontinuity
// between the previous and next point; no generator currently detects
// domain breaks, so it is always false.
type Iterator interface {
	HasNext() bool
	HasBreak() bool
	Reset()
	Next() (Point, error)
}
