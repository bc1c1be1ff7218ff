package grid_test

import (
	"testing"

	"github.com/katalvlaran/ropesim/grid"
)

// BenchmarkEnsureCapacity_Alternating grows the grid one row or column at a
// time, alternating front and back, to exercise the deque on both ends.
// Complexity: O(W+H) per growth step.
func BenchmarkEnsureCapacity_Alternating(b *testing.B) {
	dirs := []grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}
	for i := 0; i < b.N; i++ {
		g := grid.New()
		p := grid.Position{}
		for s := 0; s < 400; s++ {
			d := dirs[s%len(dirs)]
			off, err := g.EnsureCapacity(p, d, s/4+1)
			if err != nil {
				b.Fatalf("EnsureCapacity: %v", err)
			}
			p = off.Shift(p)
		}
	}
}

// BenchmarkMark measures the lattice join on a warm grid.
func BenchmarkMark(b *testing.B) {
	g := grid.New()
	_, _ = g.EnsureCapacity(grid.Position{}, grid.Right, 63)
	_, _ = g.EnsureCapacity(grid.Position{}, grid.Down, 63)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := grid.Position{X: i & 63, Y: (i >> 6) & 63}
		if i&1 == 0 {
			_ = g.Mark(p, grid.MarkHead)
		} else {
			_ = g.Mark(p, grid.MarkTail)
		}
	}
}
