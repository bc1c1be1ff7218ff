package rope

import (
	"iter"

	"github.com/katalvlaran/ropesim/grid"
)

// Label returns the debug symbol of knot i in a chain of n knots:
// 'H' for the head, 'T' for the tail, '1'..'9' for interior knots and '#'
// beyond that.
func Label(i, n int) rune {
	switch {
	case i == 0:
		return 'H'
	case i == n-1:
		return 'T'
	case i <= 9:
		return rune('0' + i)
	}
	return '#'
}

// Render lazily yields the grid rows with knots drawn over the visit trail.
// When knots overlap, the one nearest the head is shown.
func (s *Simulator) Render() iter.Seq[string] {
	at := make(map[grid.Position]rune, len(s.knots))
	for i := len(s.knots) - 1; i >= 0; i-- {
		at[s.knots[i]] = Label(i, len(s.knots))
	}
	return s.grid.Rows(func(p grid.Position) (rune, bool) {
		r, ok := at[p]
		return r, ok
	})
}
