package curve

// Empty is the degenerate sequence with no points, used whenever no
// current function exists.
type Empty struct{}

func (Empty) HasNext() bool  { return false }
func (Empty) HasBreak() bool { return false }
func (Empty) Reset()         {}

func (Empty) Next() (Point, error) {
	return Point{}, ErrExhausted
}
